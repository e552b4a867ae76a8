// Package scoring derives the outcome of a finished attempt. Everything
// here is a pure function of the question set and the recorded answers.
package scoring

import "github.com/artemsultanov-dotcom/colreg-quiz/internal/questiongen"

// PassThreshold is the minimum number of correct answers for a pass.
const PassThreshold = 7

// Result summarizes a finished attempt.
type Result struct {
	Correct  int
	Answered int
	Total    int
	Passed   bool
}

// Score counts correct answers and applies the pass threshold. Answers
// beyond the question set are ignored; unanswered questions count as
// incorrect, so an attempt cut short by the timer is scored on what was
// actually answered.
func Score(questions []questiongen.Question, answers []int) Result {
	r := Result{Total: len(questions)}
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		r.Answered++
		if answers[i] == q.CorrectIndex {
			r.Correct++
		}
	}
	r.Passed = r.Correct >= PassThreshold
	return r
}

// QuestionReview pairs one question with the answer given to it, for the
// per-question breakdown in the results screen and the report.
type QuestionReview struct {
	Index    int
	Question questiongen.Question
	// Chosen is the selected option index, -1 when unanswered.
	Chosen  int
	Correct bool
}

// Answered reports whether the candidate reached this question.
func (r QuestionReview) Answered() bool { return r.Chosen >= 0 }

// Review builds the per-question breakdown in question order.
func Review(questions []questiongen.Question, answers []int) []QuestionReview {
	reviews := make([]QuestionReview, len(questions))
	for i, q := range questions {
		rv := QuestionReview{Index: i, Question: q, Chosen: -1}
		if i < len(answers) {
			rv.Chosen = answers[i]
			rv.Correct = answers[i] == q.CorrectIndex
		}
		reviews[i] = rv
	}
	return reviews
}
