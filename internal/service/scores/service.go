package scores

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	scoreRepo "github.com/m04kA/coaching-scheduler/internal/infra/storage/score"
	"github.com/m04kA/coaching-scheduler/internal/service/scores/models"
)

// Service сервис истории результатов тестов
type Service struct {
	scoreRepo ScoreRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса результатов
func NewService(scoreRepo ScoreRepository, logger Logger) *Service {
	return &Service{
		scoreRepo: scoreRepo,
		logger:    logger,
	}
}

// GetScoresForUser возвращает все результаты пользователя, новые первыми
// Клиент видит только свои результаты, администратор - любые
func (s *Service) GetScoresForUser(ctx context.Context, req *models.GetScoresRequest) (*models.ScoreListResponse, error) {
	s.logger.Info("GetScoresForUser: fetching scores for user=%s, testType=%v", req.UserID, req.TestType)

	if !req.Caller.CanAccess(req.UserID) {
		s.logger.Warn("GetScoresForUser: access denied for user=%s to user=%s", req.Caller.UserID, req.UserID)
		return nil, ErrAccessDenied
	}

	var testType *domain.TestType
	if req.TestType != nil && *req.TestType != "" {
		tt := domain.TestType(*req.TestType)
		if !tt.Valid() {
			s.logger.Warn("GetScoresForUser: unknown test type=%s", *req.TestType)
			return nil, fmt.Errorf("%w: unknown test type %q", ErrInvalidInput, *req.TestType)
		}
		testType = &tt
	}

	items, err := s.scoreRepo.GetByUserID(ctx, req.UserID, testType)
	if err != nil {
		s.logger.Error("GetScoresForUser: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetScoresForUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetScoresForUser: successfully fetched %d scores for user=%s", len(items), req.UserID)
	return models.FromDomainScoreList(items), nil
}

// GetByID получает результат по ID
func (s *Service) GetByID(ctx context.Context, caller domain.Identity, id uuid.UUID) (*models.ScoreResponse, error) {
	s.logger.Info("GetByID: fetching score id=%s for user=%s", id, caller.UserID)

	score, err := s.scoreRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scoreRepo.ErrScoreNotFound) {
			s.logger.Warn("GetByID: score id=%s not found", id)
			return nil, ErrScoreNotFound
		}
		s.logger.Error("GetByID: repository error for score id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !caller.CanAccess(score.UserID) {
		s.logger.Warn("GetByID: access denied for user=%s to score id=%s", caller.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainScore(score), nil
}
