package exam

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidState is returned when an operation is attempted in a session
// state that does not allow it. Wrapped with context by the transition.
var ErrInvalidState = errors.New("invalid session state")

// ValidationError reports missing profile fields. The session stays in
// Intake; the caller shows the message inline.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("profile incomplete: missing %s", strings.Join(e.Missing, ", "))
}

// GenerationError reports a failed question-set generation: service error,
// malformed response, or missing credentials. The session reverts to Intake
// with all partial data discarded.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("question generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
