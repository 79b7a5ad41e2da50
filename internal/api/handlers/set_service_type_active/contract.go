package set_service_type_active

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

type CatalogService interface {
	SetActive(ctx context.Context, caller domain.Identity, id uuid.UUID, active bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
