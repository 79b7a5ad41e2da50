package toggle_block

import (
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/schedule"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.Caller.IsAdmin() {
		return ErrAccessDenied
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Slot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid slot: %v", ErrInvalidInput, err)
	}

	// Блокировать можно только слоты сетки рабочего дня
	if !schedule.IsOnGrid(req.Date, req.Slot) {
		return fmt.Errorf("%w: %s", ErrInvalidTimeSlot, req.Slot)
	}

	return nil
}
