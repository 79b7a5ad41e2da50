package get_user_scores

import (
	"context"

	"github.com/m04kA/coaching-scheduler/internal/service/scores/models"
)

type ScoreService interface {
	GetScoresForUser(ctx context.Context, req *models.GetScoresRequest) (*models.ScoreListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
