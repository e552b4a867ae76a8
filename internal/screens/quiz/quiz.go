// Package quiz runs the timed question sequence: it waits for generation,
// drives the countdown, and collects one answer per question.
package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/artemsultanov-dotcom/colreg-quiz/internal/exam"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/questiongen"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/router"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/screen"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/ui/components"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/ui/layout"
)

// lowTimeThreshold is the remaining-seconds mark where the countdown turns
// red.
const lowTimeThreshold = 60

// QuizScreen implements screen.Screen for the active assessment.
type QuizScreen struct {
	session        *exam.Session
	generator      questiongen.Generator
	resultsFactory func() screen.Screen
	intakeFactory  func() screen.Screen

	choice      components.MultiChoice
	epoch       int
	generating  bool
	genErr      error
	quitConfirm bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen. The session must be in the generating state;
// Init kicks off question generation.
func New(session *exam.Session, generator questiongen.Generator, resultsFactory, intakeFactory func() screen.Screen) *QuizScreen {
	return &QuizScreen{
		session:        session,
		generator:      generator,
		resultsFactory: resultsFactory,
		intakeFactory:  intakeFactory,
		generating:     true,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.generateQuestions()
}

func (s *QuizScreen) Title() string {
	return "Assessment"
}

// Status shows the countdown in the header once the quiz is running.
func (s *QuizScreen) Status() string {
	if s.session.State() != exam.StateInProgress {
		return ""
	}
	return layout.FormatCountdown(s.session.Remaining())
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.genErr != nil:
		return []layout.KeyHint{
			{Key: "any key", Description: "Back to details"},
		}
	case s.generating:
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon attempt"},
			{Key: "N", Description: "Keep going"},
		}
	default:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		return s.handleQuestionsReady(msg)
	case countdownTickMsg:
		return s.handleTick(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// generateQuestions produces the question set asynchronously.
func (s *QuizScreen) generateQuestions() tea.Cmd {
	gen := s.generator
	return func() tea.Msg {
		questions, err := gen.Generate(context.Background())
		return questionsReadyMsg{Questions: questions, Err: err}
	}
}

func (s *QuizScreen) handleQuestionsReady(msg questionsReadyMsg) (screen.Screen, tea.Cmd) {
	s.generating = false
	if msg.Err != nil {
		s.genErr = s.session.FailGeneration(msg.Err)
		return s, nil
	}

	epoch, err := s.session.BeginQuiz(msg.Questions)
	if err != nil {
		s.genErr = s.session.FailGeneration(err)
		return s, nil
	}
	s.epoch = epoch
	s.loadQuestion()
	return s, tickCmd(s.epoch)
}

func (s *QuizScreen) handleTick(msg countdownTickMsg) (screen.Screen, tea.Cmd) {
	res := s.session.Tick(msg.Epoch)
	if !res.Applied {
		return s, nil
	}
	if res.Expired {
		return s.finish()
	}
	return s, tickCmd(msg.Epoch)
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Generation failed; any key returns to the intake form.
	if s.genErr != nil {
		intake := s.intakeFactory()
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: intake}
		}
	}

	if s.generating {
		return s, nil
	}

	// Abandon confirmation dialog. The countdown keeps running while it
	// is open.
	if s.quitConfirm {
		switch msg.String() {
		case "y", "Y":
			s.session.Restart()
			intake := s.intakeFactory()
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: intake}
			}
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.session.State() != exam.StateInProgress {
		return s, nil
	}

	switch msg.String() {
	case "esc":
		s.quitConfirm = true
		return s, nil
	case "enter":
		return s.submitAnswer(s.choice.Selected)
	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		if s.choice.Select(idx) {
			return s.submitAnswer(idx)
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

func (s *QuizScreen) submitAnswer(choice int) (screen.Screen, tea.Cmd) {
	done, err := s.session.SubmitAnswer(choice)
	if err != nil {
		// The timer expired between render and keypress.
		if s.session.State() == exam.StateCompleted {
			return s.finish()
		}
		return s, nil
	}
	if done {
		return s.finish()
	}
	s.loadQuestion()
	return s, nil
}

// loadQuestion rebuilds the choice component for the current question.
func (s *QuizScreen) loadQuestion() {
	q := s.session.Questions()[s.session.CurrentIndex()]
	s.choice = components.NewMultiChoice(q.Prompt, q.Options)
}

func (s *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	results := s.resultsFactory()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results}
	}
}

// tickCmd schedules the next countdown second under the given epoch.
func tickCmd(epoch int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownTickMsg{Epoch: epoch}
	})
}
