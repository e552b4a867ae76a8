package results

import (
	"fmt"
	"math"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/artemsultanov-dotcom/colreg-quiz/internal/scoring"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/ui/theme"
)

// now is swapped in tests to keep report timestamps fixed.
var now = time.Now

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderSummary(width))
	b.WriteString("\n")
	b.WriteString(s.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(s.renderReview(width, height-lipgloss.Height(b.String())))

	return b.String()
}

func (s *ResultsScreen) renderSummary(width int) string {
	verdict := theme.Fail.Render("FAIL")
	if s.result.Passed {
		verdict = theme.Pass.Render("PASS")
	}

	pct := 0
	if s.result.Total > 0 {
		pct = int(math.Round(float64(s.result.Correct) / float64(s.result.Total) * 100))
	}
	line1 := fmt.Sprintf("%s  %s", verdict,
		theme.Body.Bold(true).Render(fmt.Sprintf("%d/%d correct (%d%%)", s.result.Correct, s.result.Total, pct)))
	line2 := theme.Subtitle.Render(fmt.Sprintf("%s, %s  -  %s",
		s.session.Profile().Name, s.session.Profile().Rank, s.session.Profile().Vessel))

	lines := []string{line1, line2}
	if s.session.Expired() {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("Time expired after %d answers", s.result.Answered)))
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func (s *ResultsScreen) renderStatusLine(width int) string {
	var status string
	switch {
	case s.saving:
		status = theme.Hint.Render("Saving report...")
	case s.saveErr != nil:
		status = lipgloss.NewStyle().Foreground(theme.Error).Render("Save failed: " + s.saveErr.Error())
	case s.savedPath != "":
		status = lipgloss.NewStyle().Foreground(theme.Success).Render("Report saved to " + s.savedPath)
	default:
		status = theme.Hint.Render("Press S to save the report")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, status)
}

func (s *ResultsScreen) renderReview(width, height int) string {
	if height < 3 {
		return ""
	}

	var lines []string
	for _, rv := range s.reviews[s.scroll:] {
		lines = append(lines, renderReviewItem(rv, width-6)...)
		lines = append(lines, "")
		if len(lines) >= height {
			break
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	body := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Padding(0, 3).Render(body)
}

func renderReviewItem(rv scoring.QuestionReview, width int) []string {
	var marker string
	switch {
	case !rv.Answered():
		marker = lipgloss.NewStyle().Foreground(theme.TextDim).Render("–")
	case rv.Correct:
		marker = theme.Pass.Render("✓")
	default:
		marker = theme.Fail.Render("✗")
	}

	header := fmt.Sprintf("%s Q%d. %s", marker, rv.Index+1, rv.Question.Prompt)
	lines := []string{lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(header)}

	detail := "Correct: " + rv.Question.OptionText(rv.Question.CorrectIndex)
	if rv.Answered() && !rv.Correct {
		detail += "   Your answer: " + rv.Question.OptionText(rv.Chosen)
	}
	if !rv.Answered() {
		detail = "Not answered   " + detail
	}
	lines = append(lines, theme.Hint.Width(width).Render("   "+detail))
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Width(width).
		Render("   "+rv.Question.Explanation))
	return lines
}
