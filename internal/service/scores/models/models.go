package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

// GetScoresRequest запрос на получение истории результатов тестов
type GetScoresRequest struct {
	Caller   domain.Identity `json:"-"`
	UserID   uuid.UUID       `json:"userId"`
	TestType *string         `json:"testType,omitempty"`
}

// ScoreResponse ответ с результатом теста
type ScoreResponse struct {
	ID        uuid.UUID             `json:"id"`
	UserID    uuid.UUID             `json:"userId"`
	TestType  string                `json:"testType"`
	Breakdown domain.ScoreBreakdown `json:"breakdown"`
	Answers   map[string]string     `json:"answers,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
}

// ScoreListResponse ответ со списком результатов, новые первыми
type ScoreListResponse struct {
	Scores []ScoreResponse `json:"scores"`
}

// FromDomainScore конвертирует domain модель в DTO
func FromDomainScore(s *domain.Score) *ScoreResponse {
	if s == nil {
		return nil
	}
	return &ScoreResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		TestType:  string(s.TestType),
		Breakdown: s.Breakdown,
		Answers:   s.Answers,
		CreatedAt: s.CreatedAt,
	}
}

// FromDomainScoreList конвертирует список domain моделей в DTO
func FromDomainScoreList(items []*domain.Score) *ScoreListResponse {
	resp := &ScoreListResponse{Scores: make([]ScoreResponse, 0, len(items))}
	for _, s := range items {
		if r := FromDomainScore(s); r != nil {
			resp.Scores = append(resp.Scores, *r)
		}
	}
	return resp
}
