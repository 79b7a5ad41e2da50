package list_service_types

import (
	"context"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context, caller domain.Identity) (*models.ServiceTypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
