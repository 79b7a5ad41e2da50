package reschedule_booking

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/schedule"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Caller.IsAnonymous() {
		return ErrAccessDenied
	}

	if req.AppointmentID == uuid.Nil {
		return fmt.Errorf("%w: appointmentID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Slot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid slot: %v", ErrInvalidInput, err)
	}

	return nil
}

// mapBookableError переводит ошибку проверки слота в ошибку usecase
func mapBookableError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrNotOnGrid):
		return ErrInvalidTimeSlot
	case errors.Is(err, schedule.ErrSlotUnavailable):
		return ErrSlotNotAvailable
	case errors.Is(err, schedule.ErrInsideLeadTime):
		return ErrTooLateToBook
	default:
		return fmt.Errorf("%w: check slot: %v", ErrInternal, err)
	}
}
