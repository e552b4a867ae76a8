// Package intake implements the candidate details form shown before the
// assessment starts.
package intake

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/artemsultanov-dotcom/colreg-quiz/internal/exam"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/router"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/screen"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/ui/components"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/ui/layout"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/ui/theme"
)

const (
	fieldName = iota
	fieldRank
	fieldVessel
	fieldCount
)

// IntakeScreen collects the candidate profile and starts the assessment.
type IntakeScreen struct {
	session     *exam.Session
	quizFactory func() screen.Screen
	fields      [fieldCount]components.FormField
	focus       int
	errMsg      string
}

var _ screen.Screen = (*IntakeScreen)(nil)
var _ screen.KeyHintProvider = (*IntakeScreen)(nil)

// New creates the intake form. quizFactory produces the screen to switch
// to once the profile is accepted.
func New(session *exam.Session, quizFactory func() screen.Screen) *IntakeScreen {
	s := &IntakeScreen{
		session:     session,
		quizFactory: quizFactory,
	}
	s.fields[fieldName] = components.NewFormField("Full name", "e.g. Anna Larsen", 60)
	s.fields[fieldRank] = components.NewFormField("Rank", "e.g. Chief Mate", 40)
	s.fields[fieldVessel] = components.NewFormField("Vessel", "e.g. MV Baltic Star", 60)

	// A kept profile from a failed generation pre-fills the form.
	p := session.Profile()
	s.fields[fieldName].Model.SetValue(p.Name)
	s.fields[fieldRank].Model.SetValue(p.Rank)
	s.fields[fieldVessel].Model.SetValue(p.Vessel)
	return s
}

func (s *IntakeScreen) Title() string {
	return "Candidate Details"
}

func (s *IntakeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *IntakeScreen) Init() tea.Cmd {
	return s.fields[s.focus].Focus()
}

func (s *IntakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)
		case "enter":
			if s.focus < fieldCount-1 {
				return s, s.setFocus(s.focus + 1)
			}
			return s.submit()
		}
	}

	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	s.fields[s.focus].ClearInvalid()
	return s, cmd
}

func (s *IntakeScreen) setFocus(i int) tea.Cmd {
	s.fields[s.focus].Blur()
	s.focus = i
	return s.fields[s.focus].Focus()
}

func (s *IntakeScreen) submit() (screen.Screen, tea.Cmd) {
	err := s.session.SubmitProfile(exam.Profile{
		Name:   s.fields[fieldName].Value(),
		Rank:   s.fields[fieldRank].Value(),
		Vessel: s.fields[fieldVessel].Value(),
	})
	if err != nil {
		var verr *exam.ValidationError
		if errors.As(err, &verr) {
			for _, field := range verr.Missing {
				switch field {
				case "name":
					s.fields[fieldName].MarkInvalid()
				case "rank":
					s.fields[fieldRank].MarkInvalid()
				case "vessel":
					s.fields[fieldVessel].MarkInvalid()
				}
			}
		}
		s.errMsg = err.Error()
		return s, nil
	}

	s.errMsg = ""
	quiz := s.quizFactory()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: quiz}
	}
}

func (s *IntakeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("COLREG Competency Assessment"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("10 questions, 10 minutes, pass mark 7"))
	b.WriteString("\n\n")

	for i := range s.fields {
		b.WriteString(s.fields[i].View())
		b.WriteString("\n\n")
	}

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
		b.WriteString("\n")
	}

	card := theme.Card.Width(min(width-4, 64)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
