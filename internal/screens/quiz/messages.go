package quiz

import (
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/questiongen"
)

// questionsReadyMsg is sent when the question set has been generated.
type questionsReadyMsg struct {
	Questions []questiongen.Question
	Err       error
}

// countdownTickMsg carries one second of elapsed quiz time, tagged with
// the timer epoch it was scheduled under.
type countdownTickMsg struct {
	Epoch int
}
