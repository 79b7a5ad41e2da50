package reschedule_appointment

import (
	"context"

	rescheduleBooking "github.com/m04kA/coaching-scheduler/internal/usecase/reschedule_booking"
)

type RescheduleUseCase interface {
	Execute(ctx context.Context, req *rescheduleBooking.Request) (*rescheduleBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
