package complete_appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/internal/service/appointments/models"
)

type AppointmentService interface {
	Complete(ctx context.Context, caller domain.Identity, id uuid.UUID, req *models.CompleteRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
