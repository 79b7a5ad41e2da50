package get_service_type

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/internal/service/catalog/models"
)

type CatalogService interface {
	GetByID(ctx context.Context, caller domain.Identity, id uuid.UUID) (*models.ServiceTypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
