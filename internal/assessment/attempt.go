package assessment

import (
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

// Phase of an assessment attempt
type Phase string

const (
	PhaseSelection Phase = "selection"
	PhaseIntro     Phase = "intro"
	PhaseTaking    Phase = "taking"
	PhaseResults   Phase = "results"
)

// TestSource resolves test definitions
type TestSource interface {
	Get(t domain.TestType) (*domain.Test, error)
}

// Attempt is one pass through an assessment:
// selection -> intro -> taking -> results, with Exit from taking back to selection.
//
// While taking, sections can be visited in any order. Submission is refused
// until every question is answered. Results are terminal; Reset starts over.
// An Attempt is not safe for concurrent use.
type Attempt struct {
	source   TestSource
	phase    Phase
	test     *domain.Test
	sections []domain.SectionRef
	current  int
	answers  domain.AnswerSet
	result   *domain.ScoreBreakdown
}

// NewAttempt creates an attempt at the selection phase
func NewAttempt(source TestSource) *Attempt {
	return &Attempt{
		source: source,
		phase:  PhaseSelection,
	}
}

func (a *Attempt) Phase() Phase {
	return a.phase
}

// Test returns the selected test, or nil at selection
func (a *Attempt) Test() *domain.Test {
	return a.test
}

// SectionIndex returns the position in the flattened section list
func (a *Attempt) SectionIndex() int {
	return a.current
}

// SectionCount returns the number of sections of the selected test
func (a *Attempt) SectionCount() int {
	return len(a.sections)
}

// CurrentSection returns the section being shown
func (a *Attempt) CurrentSection() (domain.SectionRef, error) {
	if a.phase != PhaseTaking {
		return domain.SectionRef{}, a.transitionError("show a section")
	}
	return a.sections[a.current], nil
}

// Answers returns a copy of the answers given so far
func (a *Attempt) Answers() domain.AnswerSet {
	out := make(domain.AnswerSet, len(a.answers))
	for k, v := range a.answers {
		out[k] = v
	}
	return out
}

// Missing lists unanswered questions of the selected test
func (a *Attempt) Missing() []domain.AnswerKey {
	if a.test == nil {
		return nil
	}
	return Missing(a.test, a.answers)
}

// Result returns the breakdown once the attempt reached results
func (a *Attempt) Result() *domain.ScoreBreakdown {
	return a.result
}

func (a *Attempt) transitionError(action string) error {
	return fmt.Errorf("%w: cannot %s in phase %s", ErrInvalidTransition, action, a.phase)
}

// Select chooses the test to take
func (a *Attempt) Select(t domain.TestType) error {
	if a.phase != PhaseSelection {
		return a.transitionError("select a test")
	}

	test, err := a.source.Get(t)
	if err != nil {
		return err
	}

	a.test = test
	a.sections = test.FlatSections()
	a.phase = PhaseIntro
	return nil
}

// Begin starts answering at the first section
func (a *Attempt) Begin() error {
	if a.phase != PhaseIntro {
		return a.transitionError("begin")
	}

	a.current = 0
	a.answers = make(domain.AnswerSet)
	a.phase = PhaseTaking
	return nil
}

// Answer records one response. The response is validated right away.
func (a *Attempt) Answer(key domain.AnswerKey, raw string) error {
	if a.phase != PhaseTaking {
		return a.transitionError("answer")
	}
	if err := ValidateAnswer(a.test, key, raw); err != nil {
		return err
	}

	a.answers[key] = raw
	return nil
}

// GoTo jumps to any section, answered or not
func (a *Attempt) GoTo(index int) error {
	if a.phase != PhaseTaking {
		return a.transitionError("change section")
	}
	if index < 0 || index >= len(a.sections) {
		return fmt.Errorf("%w: section %d out of range 0..%d", ErrInvalidTransition, index, len(a.sections)-1)
	}

	a.current = index
	return nil
}

// Next moves to the following section
func (a *Attempt) Next() error {
	return a.GoTo(a.current + 1)
}

// Prev moves to the previous section
func (a *Attempt) Prev() error {
	return a.GoTo(a.current - 1)
}

// Exit abandons the attempt and discards unsubmitted answers
func (a *Attempt) Exit() error {
	if a.phase != PhaseTaking {
		return a.transitionError("exit")
	}
	a.clear()
	return nil
}

// Submit scores the answers. On failure the attempt stays in taking.
func (a *Attempt) Submit() (*domain.ScoreBreakdown, error) {
	if a.phase != PhaseTaking {
		return nil, a.transitionError("submit")
	}

	breakdown, err := Score(a.test, a.answers)
	if err != nil {
		return nil, err
	}

	a.result = breakdown
	a.phase = PhaseResults
	return breakdown, nil
}

// Reset starts a fresh attempt at selection
func (a *Attempt) Reset() {
	a.clear()
}

func (a *Attempt) clear() {
	a.phase = PhaseSelection
	a.test = nil
	a.sections = nil
	a.current = 0
	a.answers = nil
	a.result = nil
}
