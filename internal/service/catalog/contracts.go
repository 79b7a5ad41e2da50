package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

// ServiceTypeRepository интерфейс репозитория каталога услуг
type ServiceTypeRepository interface {
	Create(ctx context.Context, st *domain.ServiceType) (*domain.ServiceType, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceType, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.ServiceType, error)
	Update(ctx context.Context, st *domain.ServiceType) (*domain.ServiceType, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
