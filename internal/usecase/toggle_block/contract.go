package toggle_block

import (
	"context"
	"time"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

// BlockRepository интерфейс репозитория блокировок слотов
type BlockRepository interface {
	GetByStart(ctx context.Context, start time.Time) (*domain.AvailabilityBlock, error)
	Create(ctx context.Context, start, end time.Time) (bool, error)
	DeleteByStart(ctx context.Context, start time.Time) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
