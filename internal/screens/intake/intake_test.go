package intake

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/artemsultanov-dotcom/colreg-quiz/internal/exam"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/router"
	"github.com/artemsultanov-dotcom/colreg-quiz/internal/screen"
)

type stubQuiz struct{}

func (s *stubQuiz) Init() tea.Cmd                           { return nil }
func (s *stubQuiz) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubQuiz) View(int, int) string                    { return "quiz" }
func (s *stubQuiz) Title() string                           { return "quiz" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newIntake(t *testing.T) (*IntakeScreen, *exam.Session) {
	t.Helper()
	session := exam.NewSession()
	s := New(session, func() screen.Screen { return &stubQuiz{} })
	s.Init()
	return s, session
}

func typeText(s *IntakeScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func TestFocusCycling(t *testing.T) {
	s, _ := newIntake(t)

	if !s.fields[fieldName].Focused() {
		t.Fatal("name field not focused initially")
	}

	s.Update(specialKey(tea.KeyTab))
	if s.focus != fieldRank || !s.fields[fieldRank].Focused() {
		t.Errorf("focus = %d after tab, want rank focused", s.focus)
	}

	s.Update(specialKey(tea.KeyTab))
	s.Update(specialKey(tea.KeyTab))
	if s.focus != fieldName {
		t.Errorf("focus = %d, want wrap back to name", s.focus)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.focus != fieldVessel {
		t.Errorf("focus = %d after shift+tab, want vessel", s.focus)
	}
}

func TestEnterAdvancesThenSubmits(t *testing.T) {
	s, session := newIntake(t)

	typeText(s, "Anna Larsen")
	s.Update(specialKey(tea.KeyEnter))
	typeText(s, "Chief Mate")
	s.Update(specialKey(tea.KeyEnter))
	typeText(s, "MV Baltic Star")
	_, cmd := s.Update(specialKey(tea.KeyEnter))

	if session.State() != exam.StateGenerating {
		t.Fatalf("state = %v, want generating", session.State())
	}
	got := session.Profile()
	want := exam.Profile{Name: "Anna Larsen", Rank: "Chief Mate", Vessel: "MV Baltic Star"}
	if got != want {
		t.Errorf("profile = %+v, want %+v", got, want)
	}

	if cmd == nil {
		t.Fatal("expected navigation command after submit")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
}

func TestRejectedSubmitMarksMissingFields(t *testing.T) {
	s, session := newIntake(t)

	typeText(s, "Anna Larsen")
	s.Update(specialKey(tea.KeyEnter)) // to rank, left blank
	s.Update(specialKey(tea.KeyEnter)) // to vessel
	typeText(s, "   ")
	_, cmd := s.Update(specialKey(tea.KeyEnter))

	if cmd != nil {
		t.Error("rejected submit produced a navigation command")
	}
	if session.State() != exam.StateIntake {
		t.Errorf("state = %v, want intake", session.State())
	}
	if s.errMsg == "" {
		t.Error("no error message shown")
	}
	if s.fields[fieldName].Invalid {
		t.Error("name marked invalid despite being filled")
	}
	if !s.fields[fieldRank].Invalid || !s.fields[fieldVessel].Invalid {
		t.Error("missing fields not marked invalid")
	}
}

func TestTypingClearsInvalidFlag(t *testing.T) {
	s, _ := newIntake(t)

	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter)) // empty submit from vessel field
	if !s.fields[fieldName].Invalid {
		t.Fatal("empty submit did not mark the name field")
	}

	s.Update(specialKey(tea.KeyTab)) // wrap back to name
	s.Update(keyPress('A'))
	if s.fields[fieldName].Invalid {
		t.Error("typing did not clear the invalid flag")
	}
}

func TestKeptProfilePreFillsForm(t *testing.T) {
	session := exam.NewSession()
	if err := session.SubmitProfile(exam.Profile{Name: "Anna Larsen", Rank: "Master", Vessel: "MV Test"}); err != nil {
		t.Fatalf("SubmitProfile: %v", err)
	}
	session.FailGeneration(errors.New("provider unavailable"))

	s := New(session, func() screen.Screen { return &stubQuiz{} })
	if got := s.fields[fieldName].Value(); got != "Anna Larsen" {
		t.Errorf("name = %q, want pre-filled value", got)
	}
	if got := s.fields[fieldVessel].Value(); got != "MV Test" {
		t.Errorf("vessel = %q, want pre-filled value", got)
	}
}
