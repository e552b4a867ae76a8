package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/artemsultanov-dotcom/colreg-quiz/internal/ui/theme"
)

// MultiChoice is a four-option selector. It never reveals the correct
// answer; the quiz gives no feedback until the results screen.
type MultiChoice struct {
	Question string
	Options  []string
	Selected int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
		Selected: 0,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Selection is confirmed by the
// screen, not here.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	}

	return m, nil
}

// Select moves the highlight to index i if it is a valid option.
func (m *MultiChoice) Select(i int) bool {
	if i < 0 || i >= len(m.Options) {
		return false
	}
	m.Selected = i
	return true
}

// View renders the question and options.
func (m MultiChoice) View(width int) string {
	questionStyle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width)
	s := questionStyle.Render(m.Question) + "\n\n"

	labels := []string{"1", "2", "3", "4"}

	for i, opt := range m.Options {
		prefix := "    "
		if i == m.Selected {
			prefix = "  ▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, labels[i], opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == m.Selected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		s += style.Width(width).Render(line) + "\n"
	}

	return s
}
