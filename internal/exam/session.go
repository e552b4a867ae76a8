// Package exam owns the assessment session state machine: candidate intake,
// question-set generation, the timed quiz itself, and completion. A session
// is a plain single-owner aggregate driven from the UI update loop; it is
// not safe for concurrent use.
package exam

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/artemsultanov-dotcom/colreg-quiz/internal/questiongen"
)

// DurationSeconds is the time allotted for a full question set.
const DurationSeconds = 600

// State identifies a phase of the session lifecycle.
type State int

const (
	// StateIntake collects the candidate profile.
	StateIntake State = iota
	// StateGenerating waits for the question set to be produced.
	StateGenerating
	// StateInProgress runs the timed quiz.
	StateInProgress
	// StateCompleted holds the finished attempt, by final answer or by
	// timer expiry.
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIntake:
		return "intake"
	case StateGenerating:
		return "generating"
	case StateInProgress:
		return "in-progress"
	case StateCompleted:
		return "completed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Profile identifies the candidate. All fields are required.
type Profile struct {
	Name   string
	Rank   string
	Vessel string
}

// Session is one candidate attempt from intake through completion.
type Session struct {
	id        string
	state     State
	profile   Profile
	questions []questiongen.Question
	answers   []int
	current   int
	remaining int
	expired   bool
	countdown Countdown
}

// NewSession returns a fresh session in the intake state.
func NewSession() *Session {
	return &Session{
		id:        uuid.NewString(),
		state:     StateIntake,
		remaining: DurationSeconds,
	}
}

func (s *Session) ID() string       { return s.id }
func (s *Session) State() State     { return s.state }
func (s *Session) Profile() Profile { return s.profile }

// Questions returns the active question set, nil before generation.
func (s *Session) Questions() []questiongen.Question { return s.questions }

// Answers returns the chosen option indices in question order. Its length
// is the number of questions answered so far; on timer expiry it stays
// shorter than the question set.
func (s *Session) Answers() []int { return s.answers }

// CurrentIndex returns the zero-based index of the question awaiting an
// answer.
func (s *Session) CurrentIndex() int { return s.current }

// Remaining returns the seconds left on the countdown.
func (s *Session) Remaining() int { return s.remaining }

// Expired reports whether the attempt ended by timer expiry rather than by
// answering the final question.
func (s *Session) Expired() bool { return s.expired }

// TimerEpoch returns the epoch to tag the next scheduled countdown tick
// with.
func (s *Session) TimerEpoch() int { return s.countdown.Epoch() }

// SubmitProfile validates and records the candidate profile, moving the
// session to the generating state. Fields are trimmed before the non-empty
// check; a *ValidationError keeps the session in intake.
func (s *Session) SubmitProfile(p Profile) error {
	if s.state != StateIntake {
		return fmt.Errorf("submit profile in %s state: %w", s.state, ErrInvalidState)
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Rank = strings.TrimSpace(p.Rank)
	p.Vessel = strings.TrimSpace(p.Vessel)
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Rank == "" {
		missing = append(missing, "rank")
	}
	if p.Vessel == "" {
		missing = append(missing, "vessel")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	s.profile = p
	s.state = StateGenerating
	return nil
}

// BeginQuiz installs a validated question set and starts the timed quiz.
// It returns the countdown epoch the caller must tag ticks with. A set
// that fails validation leaves the session in the generating state.
func (s *Session) BeginQuiz(questions []questiongen.Question) (int, error) {
	if s.state != StateGenerating {
		return 0, fmt.Errorf("begin quiz in %s state: %w", s.state, ErrInvalidState)
	}
	if err := questiongen.ValidateSet(questions); err != nil {
		return 0, err
	}
	s.questions = questions
	s.answers = nil
	s.current = 0
	s.remaining = DurationSeconds
	s.expired = false
	s.state = StateInProgress
	return s.countdown.Arm(), nil
}

// FailGeneration reverts a failed generation to the intake state. Partial
// question data is discarded; the profile is kept so the form comes back
// filled in. The returned *GenerationError wraps cause for display.
func (s *Session) FailGeneration(cause error) *GenerationError {
	if s.state == StateGenerating {
		s.questions = nil
		s.answers = nil
		s.state = StateIntake
	}
	return &GenerationError{Err: cause}
}

// SubmitAnswer records the chosen option for the current question and
// advances. Answering the final question completes the session; done
// reports that transition.
func (s *Session) SubmitAnswer(choice int) (done bool, err error) {
	if s.state != StateInProgress {
		return false, fmt.Errorf("submit answer in %s state: %w", s.state, ErrInvalidState)
	}
	if choice < 0 || choice >= questiongen.OptionCount {
		return false, fmt.Errorf("answer choice %d out of range", choice)
	}
	s.answers = append(s.answers, choice)
	if len(s.answers) == len(s.questions) {
		s.complete(false)
		return true, nil
	}
	s.current++
	return false, nil
}

// TickResult describes the effect of one countdown tick.
type TickResult struct {
	// Applied is false when the tick was stale and had no effect.
	Applied bool
	// Remaining is the seconds left after the tick.
	Remaining int
	// Expired is true when this tick exhausted the countdown and
	// completed the session.
	Expired bool
}

// Tick applies a one-second countdown tick tagged with epoch. Ticks from a
// cancelled or superseded stream, or arriving after completion, are
// dropped. Reaching zero completes the session in place, preserving every
// answer recorded so far.
func (s *Session) Tick(epoch int) TickResult {
	if s.state != StateInProgress || !s.countdown.Accepts(epoch) {
		return TickResult{Remaining: s.remaining}
	}
	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		s.complete(true)
		return TickResult{Applied: true, Expired: true}
	}
	return TickResult{Applied: true, Remaining: s.remaining}
}

// Restart discards the attempt and returns the session to a fresh intake
// state with a new ID. Any in-flight countdown tick becomes stale.
func (s *Session) Restart() {
	s.countdown.Cancel()
	s.id = uuid.NewString()
	s.state = StateIntake
	s.profile = Profile{}
	s.questions = nil
	s.answers = nil
	s.current = 0
	s.remaining = DurationSeconds
	s.expired = false
}

// complete finishes the attempt exactly once; the expiry flag is fixed by
// whichever path gets there first.
func (s *Session) complete(expired bool) {
	if s.state == StateCompleted {
		return
	}
	s.countdown.Cancel()
	s.state = StateCompleted
	s.expired = expired
}
