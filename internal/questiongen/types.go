package questiongen

// SetSize is the fixed number of questions in every assessment.
const SetSize = 10

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4

// Question is a single scenario question ready for display.
// A Question is immutable for the lifetime of the session that holds it.
type Question struct {
	// Prompt is the scenario text shown to the candidate.
	Prompt string

	// Options holds exactly 4 answer choices in display order.
	Options []string

	// CorrectIndex is the index into Options of the correct answer (0-3).
	CorrectIndex int

	// Explanation cites the relevant rule and explains the correct action.
	// Shown in the report review, never during the quiz.
	Explanation string
}

// OptionText returns the option at idx, or "" when idx is out of range.
func (q Question) OptionText(idx int) string {
	if idx < 0 || idx >= len(q.Options) {
		return ""
	}
	return q.Options[idx]
}
