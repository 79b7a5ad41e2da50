package submit_assessment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/assessment"
	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/internal/questionbank"
)

// UseCase use case для подсчета и сохранения результата теста
type UseCase struct {
	tests     TestSource
	scoreRepo ScoreRepository
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(tests TestSource, scoreRepo ScoreRepository, metrics Metrics, logger Logger) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UseCase{
		tests:     tests,
		scoreRepo: scoreRepo,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute выполняет use case подсчета результата
// Результат всегда пересчитывается на сервере по ответам.
// Для анонимного пользователя результат возвращается без сохранения.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitAssessment: user=%s, test=%s, answers=%d",
		req.Caller.UserID, req.TestType, len(req.Answers))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitAssessment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем описание теста
	test, err := uc.tests.Get(req.TestType)
	if err != nil {
		if errors.Is(err, questionbank.ErrTestNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTest, req.TestType)
		}
		uc.logger.Error("SubmitAssessment: failed to get test %s: %v", req.TestType, err)
		return nil, fmt.Errorf("%w: failed to get test: %v", ErrInternal, err)
	}

	// 3. Разбираем ключи ответов
	answers, err := domain.ParseAnswerSet(req.Answers)
	if err != nil {
		uc.logger.Warn("SubmitAssessment: invalid answer keys: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 4. Считаем результат, неполный набор ответов отклоняется
	breakdown, err := assessment.Score(test, answers)
	if err != nil {
		uc.logger.Warn("SubmitAssessment: scoring refused: %v", err)
		return nil, err
	}

	resp := &Response{
		Breakdown: breakdown,
		Insights:  assessment.Insights(test, breakdown),
	}

	// 5. Анонимный результат не сохраняется
	if req.Caller.IsAnonymous() {
		uc.metrics.IncAssessmentScored(string(req.TestType), false)
		uc.logger.Info("SubmitAssessment: anonymous %s result, overall=%.2f", req.TestType, breakdown.OverallScore)
		return resp, nil
	}

	// 6. Сохраняем результат вместе с ответами
	saved, err := uc.scoreRepo.Create(ctx, &domain.Score{
		UserID:    req.Caller.UserID,
		TestType:  req.TestType,
		Breakdown: *breakdown,
		Answers:   answers.Raw(),
	})
	if err != nil {
		uc.logger.Error("SubmitAssessment: failed to save score for user=%s: %v", req.Caller.UserID, err)
		return nil, fmt.Errorf("%w: failed to save score: %v", ErrInternal, err)
	}

	uc.metrics.IncAssessmentScored(string(req.TestType), true)
	uc.logger.Info("SubmitAssessment: saved score id=%s for user=%s", saved.ID, req.Caller.UserID)

	resp.ScoreID = &saved.ID
	resp.Persisted = true
	resp.CreatedAt = &saved.CreatedAt
	return resp, nil
}
