package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или отключена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidTimeSlot возвращается, когда слот не входит в сетку рабочего дня
	ErrInvalidTimeSlot = fmt.Errorf("%w: create_booking: invalid time slot", domain.ErrValidation)

	// ErrSlotNotAvailable возвращается, когда слот заблокирован или уже занят
	ErrSlotNotAvailable = fmt.Errorf("%w: create_booking: slot is not available", domain.ErrPrecondition)

	// ErrTooLateToBook возвращается, когда до начала слота не больше 24 часов
	ErrTooLateToBook = fmt.Errorf("%w: create_booking: too late to book this slot", domain.ErrPrecondition)

	// ErrSlotConflict возвращается, когда слот заняли параллельно, нужно выбрать другой
	ErrSlotConflict = fmt.Errorf("%w: create_booking: slot was taken concurrently", domain.ErrSlotConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: create_booking: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: create_booking: internal error", domain.ErrStorage)
)

// Исходы бронирования для метрик
const (
	outcomeCreated  = "created"
	outcomeRejected = "rejected"
	outcomeConflict = "conflict"
	outcomeError    = "error"
)
