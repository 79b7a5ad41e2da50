package submit_assessment

import (
	"context"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

// TestSource источник описаний тестов
type TestSource interface {
	Get(t domain.TestType) (*domain.Test, error)
}

// ScoreRepository интерфейс репозитория результатов
type ScoreRepository interface {
	Create(ctx context.Context, s *domain.Score) (*domain.Score, error)
}

// Metrics интерфейс доменных метрик тестов
type Metrics interface {
	IncAssessmentScored(testType string, persisted bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopMetrics struct{}

func (noopMetrics) IncAssessmentScored(string, bool) {}
