// Package report compiles a finished attempt into a paginated results
// document and hands it to a Renderer. Layout is computed here, once, so
// any renderer backend produces the same pages.
package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/artemsultanov-dotcom/colreg-quiz/internal/exam"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/scoring"
)

// FilenameSuffix is appended to the underscored candidate name to form the
// report filename.
const FilenameSuffix = "_COLREG_Assessment_Report.pdf"

// Filename derives the report filename from the candidate name: runs of
// whitespace become single underscores, then the fixed suffix is added.
func Filename(name string) string {
	return strings.Join(strings.Fields(name), "_") + FilenameSuffix
}

// Params is everything the report depends on. GeneratedAt is passed in
// rather than read from the clock, so compilation stays deterministic.
type Params struct {
	Profile     exam.Profile
	SessionID   string
	Reviews     []scoring.QuestionReview
	Result      scoring.Result
	Expired     bool
	GeneratedAt time.Time
}

// Compile lays out the full report for one attempt.
func Compile(p Params) *Document {
	blocks := []block{
		headerBlock(p.GeneratedAt),
		identityBlock(p),
		scoreBlock(p.Result, p.Expired),
	}
	for _, rv := range p.Reviews {
		blocks = append(blocks, reviewBlock(rv))
	}
	doc := &Document{
		Filename: Filename(p.Profile.Name),
		Pages:    paginate(blocks),
	}
	stampFooters(doc, p.SessionID)
	return doc
}

func headerBlock(generatedAt time.Time) block {
	var bb blockBuilder
	bb.gap(2)
	bb.line(contentLeft+3, fontTitle, "COLREG COMPETENCY ASSESSMENT")
	bb.band(0, 2)
	bb.gap(4)
	bb.line(contentLeft, fontHeading, "Results Report")
	date := generatedAt.UTC().Format("02 Jan 2006 15:04 UTC")
	bb.b.spans = append(bb.b.spans,
		TextSpan{X: contentRight - textWidth(date, fontBody), Y: bb.y, Font: fontBody, Text: date})
	bb.rule()
	bb.gap(3)
	return bb.build()
}

func identityBlock(p Params) block {
	var bb blockBuilder
	rows := []struct{ label, value string }{
		{"Candidate", p.Profile.Name},
		{"Rank", p.Profile.Rank},
		{"Vessel", p.Profile.Vessel},
		{"Session", p.SessionID},
	}
	const valueX = contentLeft + 32
	for _, row := range rows {
		bb.y += lineHeight(fontBody)
		bb.b.spans = append(bb.b.spans,
			TextSpan{X: contentLeft, Y: bb.y, Font: fontBodyBold, Text: row.label},
			TextSpan{X: valueX, Y: bb.y, Font: fontBody, Text: row.value},
		)
	}
	bb.gap(3)
	bb.rule()
	bb.gap(3)
	return bb.build()
}

func scoreBlock(r scoring.Result, expired bool) block {
	var bb blockBuilder
	verdict := "FAIL"
	if r.Passed {
		verdict = "PASS"
	}
	pct := 0
	if r.Total > 0 {
		pct = int(math.Round(float64(r.Correct) / float64(r.Total) * 100))
	}
	bb.line(contentLeft, fontHeading, fmt.Sprintf("Score: %d/%d (%d%%)", r.Correct, r.Total, pct))
	bb.line(contentLeft, fontHeading, "Verdict: "+verdict)
	bb.line(contentLeft, fontBody,
		fmt.Sprintf("Questions answered: %d of %d. Pass mark: %d correct.", r.Answered, r.Total, scoring.PassThreshold))
	if expired {
		bb.line(contentLeft, fontNote, "The attempt was closed when the time limit ran out.")
	}
	bb.gap(4)
	return bb.build()
}

func reviewBlock(rv scoring.QuestionReview) block {
	var bb blockBuilder

	verdict := "INCORRECT"
	if rv.Correct {
		verdict = "CORRECT"
	}
	bb.line(contentLeft, fontBodyBold, fmt.Sprintf("Question %d  -  %s", rv.Index+1, verdict))
	bb.wrapped(contentLeft, fontBody, rv.Question.Prompt)
	bb.gap(1)

	const optionX = contentLeft + 6
	for i, opt := range rv.Question.Options {
		f := fontBody
		if i == rv.Question.CorrectIndex || i == rv.Chosen {
			f = fontBodyBold
		}
		bb.wrapped(optionX, f, fmt.Sprintf("%c. %s", 'A'+i, opt))
	}
	bb.gap(1)

	chosen := "No Answer (time expired)"
	if rv.Answered() {
		chosen = rv.Question.OptionText(rv.Chosen)
	}
	bb.wrapped(contentLeft, fontBody, "Your answer: "+chosen)
	bb.wrapped(contentLeft, fontBody, "Correct answer: "+rv.Question.OptionText(rv.Question.CorrectIndex))
	bb.wrapped(contentLeft, fontNote, "Explanation: "+rv.Question.Explanation)
	bb.gap(5)
	return bb.build()
}

// stampFooters adds the separator and page counter to every page. It runs
// after pagination because the total page count is part of the footer.
func stampFooters(doc *Document, sessionID string) {
	total := len(doc.Pages)
	y := contentBottom + 5
	for i := range doc.Pages {
		page := &doc.Pages[i]
		page.Rules = append(page.Rules, RuleLine{X1: contentLeft, Y1: y, X2: contentRight, Y2: y})
		left := "COLREG Assessment  -  session " + sessionID
		right := fmt.Sprintf("Page %d of %d", i+1, total)
		page.Spans = append(page.Spans,
			TextSpan{X: contentLeft, Y: y + 5, Font: fontFooter, Text: left},
			TextSpan{X: contentRight - textWidth(right, fontFooter), Y: y + 5, Font: fontFooter, Text: right},
		)
	}
}
