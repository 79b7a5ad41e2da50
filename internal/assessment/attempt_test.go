package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

func newStressAttempt(t *testing.T) *Attempt {
	t.Helper()
	a := NewAttempt(fakeSource{domain.TestStress: stressTest()})
	require.NoError(t, a.Select(domain.TestStress))
	require.NoError(t, a.Begin())
	return a
}

func answerAll(t *testing.T, a *Attempt, value string) {
	t.Helper()
	for _, k := range Keys(a.Test()) {
		require.NoError(t, a.Answer(k, value))
	}
}

func TestAttempt_HappyPath(t *testing.T) {
	a := NewAttempt(fakeSource{domain.TestStress: stressTest()})
	assert.Equal(t, PhaseSelection, a.Phase())

	require.NoError(t, a.Select(domain.TestStress))
	assert.Equal(t, PhaseIntro, a.Phase())
	assert.Equal(t, 2, a.SectionCount())

	require.NoError(t, a.Begin())
	assert.Equal(t, PhaseTaking, a.Phase())
	assert.Equal(t, 0, a.SectionIndex())

	answerAll(t, a, "4")

	result, err := a.Submit()
	require.NoError(t, err)
	assert.Equal(t, PhaseResults, a.Phase())
	assert.Same(t, result, a.Result())
}

func TestAttempt_Navigation(t *testing.T) {
	a := newStressAttempt(t)

	require.NoError(t, a.Next())
	ref, err := a.CurrentSection()
	require.NoError(t, err)
	assert.Equal(t, domain.SectionRef{Part: 1, Section: 0}, ref)

	assert.ErrorIs(t, a.Next(), ErrInvalidTransition)
	assert.Equal(t, 1, a.SectionIndex())

	require.NoError(t, a.Prev())
	assert.ErrorIs(t, a.Prev(), ErrInvalidTransition)

	// переход к любой секции, даже без ответов
	require.NoError(t, a.GoTo(1))
	assert.ErrorIs(t, a.GoTo(2), ErrInvalidTransition)
	assert.ErrorIs(t, a.GoTo(-1), ErrInvalidTransition)
}

func TestAttempt_SubmitBlockedUntilComplete(t *testing.T) {
	a := newStressAttempt(t)
	require.NoError(t, a.Answer(domain.AnswerKey{Part: 0, Section: 0, Question: 0}, "3"))

	_, err := a.Submit()
	assert.ErrorIs(t, err, ErrIncompleteAnswers)
	assert.Equal(t, PhaseTaking, a.Phase())
	assert.Len(t, a.Missing(), 5)

	answerAll(t, a, "3")
	_, err = a.Submit()
	require.NoError(t, err)
	assert.Empty(t, a.Missing())
}

func TestAttempt_AnswerValidation(t *testing.T) {
	a := newStressAttempt(t)

	assert.ErrorIs(t, a.Answer(domain.AnswerKey{Part: 0, Section: 0, Question: 0}, "7"), ErrInvalidAnswer)
	assert.ErrorIs(t, a.Answer(domain.AnswerKey{Part: 3, Section: 0, Question: 0}, "3"), ErrInvalidAnswer)
	assert.Empty(t, a.Answers())
}

func TestAttempt_ExitDiscardsAnswers(t *testing.T) {
	a := newStressAttempt(t)
	answerAll(t, a, "2")

	require.NoError(t, a.Exit())
	assert.Equal(t, PhaseSelection, a.Phase())
	assert.Nil(t, a.Test())
	assert.Empty(t, a.Answers())

	require.NoError(t, a.Select(domain.TestStress))
	require.NoError(t, a.Begin())
	assert.Empty(t, a.Answers())
}

func TestAttempt_InvalidTransitions(t *testing.T) {
	a := NewAttempt(fakeSource{domain.TestStress: stressTest()})

	assert.ErrorIs(t, a.Begin(), ErrInvalidTransition)
	assert.ErrorIs(t, a.Exit(), ErrInvalidTransition)
	assert.ErrorIs(t, a.Next(), ErrInvalidTransition)
	_, err := a.Submit()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = a.CurrentSection()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	assert.ErrorIs(t, a.Select(domain.TestLiteracy), ErrUnsupportedTest)
	assert.Equal(t, PhaseSelection, a.Phase())

	require.NoError(t, a.Select(domain.TestStress))
	assert.ErrorIs(t, a.Select(domain.TestStress), ErrInvalidTransition)
	assert.ErrorIs(t, a.Answer(domain.AnswerKey{}, "3"), ErrInvalidTransition)
}

func TestAttempt_ResultsAreTerminal(t *testing.T) {
	a := newStressAttempt(t)
	answerAll(t, a, "5")
	_, err := a.Submit()
	require.NoError(t, err)

	assert.ErrorIs(t, a.Answer(domain.AnswerKey{}, "1"), ErrInvalidTransition)
	assert.ErrorIs(t, a.Exit(), ErrInvalidTransition)
	_, err = a.Submit()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	a.Reset()
	assert.Equal(t, PhaseSelection, a.Phase())
	assert.Nil(t, a.Result())
}
