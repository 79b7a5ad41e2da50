package scores

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

// ScoreRepository интерфейс репозитория результатов тестов
type ScoreRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Score, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, testType *domain.TestType) ([]*domain.Score, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
