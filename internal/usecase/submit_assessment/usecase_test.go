package submit_assessment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/coaching-scheduler/internal/assessment"
	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/internal/questionbank"
	"github.com/m04kA/coaching-scheduler/pkg/logger"
)

type fakeScores struct {
	saved []*domain.Score
	err   error
}

func (f *fakeScores) Create(_ context.Context, s *domain.Score) (*domain.Score, error) {
	if f.err != nil {
		return nil, f.err
	}
	s.ID = uuid.New()
	s.CreatedAt = time.Date(2026, 6, 9, 12, 0, 0, 0, time.UTC)
	f.saved = append(f.saved, s)
	return s, nil
}

type scoredCall struct {
	testType  string
	persisted bool
}

type fakeMetrics struct {
	calls []scoredCall
}

func (f *fakeMetrics) IncAssessmentScored(testType string, persisted bool) {
	f.calls = append(f.calls, scoredCall{testType: testType, persisted: persisted})
}

func loadBank(t *testing.T) *questionbank.Bank {
	t.Helper()
	bank, err := questionbank.Load()
	require.NoError(t, err)
	return bank
}

// answersFor отвечает на все вопросы: рейтинг rating, в вопросах с выбором правильный вариант
func answersFor(t *testing.T, bank *questionbank.Bank, tt domain.TestType, rating string) map[string]string {
	t.Helper()
	test, err := bank.Get(tt)
	require.NoError(t, err)

	raw := make(map[string]string)
	for _, k := range assessment.Keys(test) {
		q := test.Parts[k.Part].Sections[k.Section].Questions[k.Question]
		if q.Kind == domain.QuestionChoice {
			raw[k.String()] = q.Answer
		} else {
			raw[k.String()] = rating
		}
	}
	return raw
}

func TestUseCase_Execute_Anonymous(t *testing.T) {
	bank := loadBank(t)
	scores := &fakeScores{}
	metrics := &fakeMetrics{}
	uc := NewUseCase(bank, scores, metrics, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{
		TestType: domain.TestStress,
		Answers:  answersFor(t, bank, domain.TestStress, "3"),
	})
	require.NoError(t, err)

	assert.False(t, resp.Persisted)
	assert.Nil(t, resp.ScoreID)
	assert.Equal(t, 3.0, resp.Breakdown.OverallScore)
	assert.Empty(t, scores.saved)
	assert.Equal(t, []scoredCall{{testType: "stress", persisted: false}}, metrics.calls)
}

func TestUseCase_Execute_Authenticated(t *testing.T) {
	bank := loadBank(t)
	scores := &fakeScores{}
	userID := uuid.New()
	uc := NewUseCase(bank, scores, nil, logger.NewNop())

	answers := answersFor(t, bank, domain.TestLiteracy, "4")
	resp, err := uc.Execute(context.Background(), &Request{
		Caller:   domain.Identity{UserID: userID, Role: domain.RoleClient},
		TestType: domain.TestLiteracy,
		Answers:  answers,
	})
	require.NoError(t, err)

	require.True(t, resp.Persisted)
	require.NotNil(t, resp.ScoreID)
	require.NotNil(t, resp.CreatedAt)
	require.Len(t, scores.saved, 1)

	saved := scores.saved[0]
	assert.Equal(t, *resp.ScoreID, saved.ID)
	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, domain.TestLiteracy, saved.TestType)
	assert.Equal(t, answers, saved.Answers)
	assert.Equal(t, *resp.Breakdown, saved.Breakdown)
	assert.Equal(t, 100.0, saved.Breakdown.Literacy.KnowledgeScore)
	assert.NotEmpty(t, resp.Insights)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	bank := loadBank(t)

	incomplete := answersFor(t, bank, domain.TestStress, "2")
	delete(incomplete, "1-2-3")

	outOfRange := answersFor(t, bank, domain.TestStress, "2")
	outOfRange["0-0-0"] = "9"

	badKey := answersFor(t, bank, domain.TestStress, "2")
	badKey["first"] = "2"

	aliased := answersFor(t, bank, domain.TestStress, "2")
	aliased["00-0-0"] = "5"
	aliased["+0-0-0"] = "1"

	paddedRating := answersFor(t, bank, domain.TestStress, "2")
	paddedRating["0-0-0"] = "05"

	tests := []struct {
		name     string
		testType domain.TestType
		answers  map[string]string
		scores   *fakeScores
		wantErr  error
	}{
		{
			name:     "unknown test",
			testType: "anxiety",
			answers:  map[string]string{"0-0-0": "1"},
			wantErr:  ErrUnknownTest,
		},
		{
			name:     "no answers",
			testType: domain.TestStress,
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "incomplete",
			testType: domain.TestStress,
			answers:  incomplete,
			wantErr:  assessment.ErrIncompleteAnswers,
		},
		{
			name:     "rating out of range",
			testType: domain.TestStress,
			answers:  outOfRange,
			wantErr:  assessment.ErrInvalidAnswer,
		},
		{
			name:     "malformed key",
			testType: domain.TestStress,
			answers:  badKey,
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "aliased keys",
			testType: domain.TestStress,
			answers:  aliased,
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "padded rating",
			testType: domain.TestStress,
			answers:  paddedRating,
			wantErr:  assessment.ErrInvalidAnswer,
		},
		{
			name:     "storage failure",
			testType: domain.TestStress,
			answers:  answersFor(t, bank, domain.TestStress, "2"),
			scores:   &fakeScores{err: errors.New("db down")},
			wantErr:  domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := tt.scores
			if scores == nil {
				scores = &fakeScores{}
			}
			uc := NewUseCase(bank, scores, nil, logger.NewNop())

			resp, err := uc.Execute(context.Background(), &Request{
				Caller:   domain.Identity{UserID: uuid.New(), Role: domain.RoleClient},
				TestType: tt.testType,
				Answers:  tt.answers,
			})
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, scores.saved)
		})
	}
}
