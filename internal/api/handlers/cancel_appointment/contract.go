package cancel_appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

type AppointmentService interface {
	Cancel(ctx context.Context, caller domain.Identity, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
