package list_clients

import (
	"context"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/internal/service/appointments/models"
)

type AppointmentService interface {
	ListClients(ctx context.Context, caller domain.Identity) (*models.ClientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
