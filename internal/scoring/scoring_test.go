package scoring

import (
	"testing"

	"github.com/artemsultanov-dotcom/colreg-quiz/internal/questiongen"
)

// setWithKey builds a full question set whose correct answer for question i
// is key[i].
func setWithKey(key [questiongen.SetSize]int) []questiongen.Question {
	qs := make([]questiongen.Question, questiongen.SetSize)
	for i := range qs {
		qs[i] = questiongen.Question{
			Prompt:       "What does Rule 5 require?",
			Options:      []string{"A", "B", "C", "D"},
			CorrectIndex: key[i],
			Explanation:  "A proper look-out at all times.",
		}
	}
	return qs
}

func TestScoreBoundary(t *testing.T) {
	key := [questiongen.SetSize]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	questions := setWithKey(key)

	tests := []struct {
		name        string
		answers     []int
		wantCorrect int
		wantPassed  bool
	}{
		{"all correct", []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, 10, true},
		{"exactly at threshold", []int{0, 0, 0, 0, 0, 0, 0, 1, 1, 1}, 7, true},
		{"one below threshold", []int{0, 0, 0, 0, 0, 0, 1, 1, 1, 1}, 6, false},
		{"none correct", []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, 0, false},
		{"no answers", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Score(questions, tt.answers)
			if r.Correct != tt.wantCorrect {
				t.Errorf("Correct = %d, want %d", r.Correct, tt.wantCorrect)
			}
			if r.Passed != tt.wantPassed {
				t.Errorf("Passed = %v, want %v", r.Passed, tt.wantPassed)
			}
			if r.Total != questiongen.SetSize {
				t.Errorf("Total = %d, want %d", r.Total, questiongen.SetSize)
			}
			if r.Answered != len(tt.answers) {
				t.Errorf("Answered = %d, want %d", r.Answered, len(tt.answers))
			}
		})
	}
}

func TestScoreExpiredAttempt(t *testing.T) {
	questions := setWithKey([questiongen.SetSize]int{2, 2, 2, 2, 2, 2, 2, 2, 2, 2})
	// Timer ran out after seven correct answers: unanswered questions
	// count against the candidate but the threshold is still met.
	r := Score(questions, []int{2, 2, 2, 2, 2, 2, 2})
	if r.Correct != 7 || !r.Passed {
		t.Errorf("Score = %+v, want 7 correct and passed", r)
	}
	if r.Answered != 7 {
		t.Errorf("Answered = %d, want 7", r.Answered)
	}
}

func TestReview(t *testing.T) {
	questions := setWithKey([questiongen.SetSize]int{1, 3, 0, 2, 1, 1, 1, 1, 1, 1})
	reviews := Review(questions, []int{1, 2, 0})
	if len(reviews) != questiongen.SetSize {
		t.Fatalf("len = %d, want %d", len(reviews), questiongen.SetSize)
	}
	if !reviews[0].Correct || reviews[0].Chosen != 1 {
		t.Errorf("review[0] = %+v, want correct with chosen 1", reviews[0])
	}
	if reviews[1].Correct {
		t.Errorf("review[1] marked correct for wrong answer")
	}
	if reviews[3].Answered() {
		t.Errorf("review[3] marked answered beyond final answer")
	}
	if got := reviews[3].Chosen; got != -1 {
		t.Errorf("review[3].Chosen = %d, want -1", got)
	}
}
