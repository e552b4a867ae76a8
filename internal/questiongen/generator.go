package questiongen

import "context"

// Generator produces a complete question set for one assessment.
type Generator interface {
	// Generate returns exactly SetSize validated questions, or an error.
	// Any non-conforming service response is rejected before it is returned.
	Generate(ctx context.Context) ([]Question, error)
}

// Unavailable is a Generator that always fails with a fixed error.
// It stands in when no LLM credential is configured, so a missing key
// surfaces as a generation failure instead of a startup crash.
type Unavailable struct {
	Err error
}

func (u Unavailable) Generate(context.Context) ([]Question, error) {
	return nil, u.Err
}
