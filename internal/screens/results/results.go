// Package results shows the outcome of a completed attempt: score,
// verdict, per-question review, and report export.
package results

import (
	tea "charm.land/bubbletea/v2"

	"github.com/artemsultanov-dotcom/colreg-quiz/internal/exam"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/report"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/router"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/screen"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/scoring"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/ui/layout"
)

// SaveFunc writes a compiled report document and returns the written path.
type SaveFunc func(doc *report.Document) (string, error)

// reportSavedMsg is sent when the report export finishes.
type reportSavedMsg struct {
	Path string
	Err  error
}

// ResultsScreen implements screen.Screen for the completed attempt.
type ResultsScreen struct {
	session       *exam.Session
	save          SaveFunc
	intakeFactory func() screen.Screen

	result  scoring.Result
	reviews []scoring.QuestionReview

	scroll    int
	saving    bool
	savedPath string
	saveErr   error
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen for a completed session.
func New(session *exam.Session, save SaveFunc, intakeFactory func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		session:       session,
		save:          save,
		intakeFactory: intakeFactory,
		result:        scoring.Score(session.Questions(), session.Answers()),
		reviews:       scoring.Review(session.Questions(), session.Answers()),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll review"},
		{Key: "S", Description: "Save report"},
		{Key: "R", Description: "New assessment"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportSavedMsg:
		s.saving = false
		s.savedPath = msg.Path
		s.saveErr = msg.Err
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			if s.scroll < len(s.reviews)-1 {
				s.scroll++
			}
		case "s", "S":
			return s.saveReport()
		case "r", "R":
			s.session.Restart()
			intake := s.intakeFactory()
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: intake}
			}
		}
	}
	return s, nil
}

// saveReport compiles and exports the report asynchronously.
func (s *ResultsScreen) saveReport() (screen.Screen, tea.Cmd) {
	if s.saving {
		return s, nil
	}
	s.saving = true
	doc := report.Compile(report.Params{
		Profile:     s.session.Profile(),
		SessionID:   s.session.ID(),
		Reviews:     s.reviews,
		Result:      s.result,
		Expired:     s.session.Expired(),
		GeneratedAt: now(),
	})
	save := s.save
	return s, func() tea.Msg {
		path, err := save(doc)
		return reportSavedMsg{Path: path, Err: err}
	}
}
