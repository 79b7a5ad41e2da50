package create_booking

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/internal/schedule"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == uuid.Nil {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.ServiceTypeID == uuid.Nil {
		return fmt.Errorf("%w: serviceTypeID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.Slot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid slot: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
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
