package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/artemsultanov-dotcom/colreg-quiz/internal/exam"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/questiongen"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/ui/components"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/ui/layout"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch {
	case s.genErr != nil:
		return s.renderGenError(width, height)
	case s.generating:
		return renderGenerating(width, height)
	case s.quitConfirm:
		return renderQuitConfirm(width, height)
	case s.session.State() == exam.StateInProgress:
		return s.renderQuestion(width, height)
	default:
		return ""
	}
}

func renderGenerating(width, height int) string {
	content := theme.Title.Render("Preparing your assessment") + "\n\n" +
		theme.Subtitle.Render("Generating COLREG scenarios...")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) renderGenError(width, height int) string {
	content := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
		Render("Could not prepare the assessment") + "\n\n" +
		theme.Body.Width(min(width-8, 70)).Render(s.genErr.Error()) + "\n\n" +
		theme.Hint.Render("press any key to return to candidate details")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(content))
}

func renderQuitConfirm(width, height int) string {
	content := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render("Abandon this attempt?") + "\n\n" +
		theme.Body.Render("Your answers will be discarded and the timer\nkeeps running until you decide.") + "\n\n" +
		theme.Hint.Render("y abandon  /  n keep going")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(content))
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	var b strings.Builder

	current := s.session.CurrentIndex()
	remaining := s.session.Remaining()

	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if remaining <= lowTimeThreshold {
		timerStyle = theme.TimerLow
	}

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", current+1, questiongen.SetSize))
	infoRight := timerStyle.Render("Time " + layout.FormatCountdown(remaining))

	pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(infoLeft + strings.Repeat(" ", pad) + infoRight)
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", float64(current)/float64(questiongen.SetSize), false, width-8)
	b.WriteString("    " + bar.View())
	b.WriteString("\n\n")

	b.WriteString(s.choice.View(min(width-8, 90)))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
