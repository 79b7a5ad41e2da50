package get_score

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/internal/service/scores/models"
)

type ScoreService interface {
	GetByID(ctx context.Context, caller domain.Identity, id uuid.UUID) (*models.ScoreResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
