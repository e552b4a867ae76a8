package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/artemsultanov-dotcom/colreg-quiz/internal/exam"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/questiongen"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/router"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/screen"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/screens/intake"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/screens/quiz"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/screens/results"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel wires one session through the intake, quiz, and results
// screens. The screens hand off to each other through factories so the
// session object stays the single source of truth.
func newAppModel(generator questiongen.Generator, save results.SaveFunc) AppModel {
	session := exam.NewSession()

	var newIntake func() screen.Screen
	intakeFactory := func() screen.Screen { return newIntake() }

	newResults := func() screen.Screen {
		return results.New(session, save, intakeFactory)
	}
	newQuiz := func() screen.Screen {
		return quiz.New(session, generator, newResults, intakeFactory)
	}
	newIntake = func() screen.Screen {
		return intake.New(session, newQuiz)
	}

	return AppModel{
		router: router.New(newIntake()),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(generator questiongen.Generator, save results.SaveFunc) error {
	p := tea.NewProgram(newAppModel(generator, save))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
