package create_service_type

import (
	"context"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/internal/service/catalog/models"
)

type CatalogService interface {
	Create(ctx context.Context, caller domain.Identity, req *models.CreateServiceTypeRequest) (*models.ServiceTypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
