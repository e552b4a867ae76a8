package questiongen

import "fmt"

// ValidationError describes why a question set failed validation.
type ValidationError struct {
	Index     int    // Question index the failure refers to, -1 for set-level failures
	Message   string // Human-readable description
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("question set invalid: %s", e.Message)
	}
	return fmt.Sprintf("question %d invalid: %s", e.Index+1, e.Message)
}

// ValidateSet checks a full question set against the contract: exactly
// SetSize questions, each with a prompt, exactly 4 non-empty options, a
// correct index inside the options, and an explanation. It is the gate
// every service response passes before entering a session.
func ValidateSet(questions []Question) *ValidationError {
	if len(questions) != SetSize {
		return &ValidationError{
			Index:     -1,
			Message:   fmt.Sprintf("expected %d questions, got %d", SetSize, len(questions)),
			Retryable: true,
		}
	}

	for i, q := range questions {
		if err := validateQuestion(i, q); err != nil {
			return err
		}
	}
	return nil
}

func validateQuestion(i int, q Question) *ValidationError {
	if q.Prompt == "" {
		return &ValidationError{Index: i, Message: "prompt is empty", Retryable: true}
	}
	if len(q.Options) != OptionCount {
		return &ValidationError{
			Index:     i,
			Message:   fmt.Sprintf("expected %d options, got %d", OptionCount, len(q.Options)),
			Retryable: true,
		}
	}
	for j, opt := range q.Options {
		if opt == "" {
			return &ValidationError{
				Index:     i,
				Message:   fmt.Sprintf("option %d is empty", j+1),
				Retryable: true,
			}
		}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return &ValidationError{
			Index:     i,
			Message:   fmt.Sprintf("correct_index %d out of range", q.CorrectIndex),
			Retryable: true,
		}
	}
	if q.Explanation == "" {
		return &ValidationError{Index: i, Message: "explanation is empty", Retryable: true}
	}
	return nil
}
