package reschedule_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("reschedule_booking: appointment not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец записи и не администратор
	ErrAccessDenied = errors.New("reschedule_booking: access denied")

	// ErrNotScheduled возвращается для отмененной или завершенной записи
	ErrNotScheduled = fmt.Errorf("%w: reschedule_booking: appointment is not scheduled", domain.ErrPrecondition)

	// ErrTooLateToChange возвращается, когда до текущего начала записи меньше 24 часов
	ErrTooLateToChange = fmt.Errorf("%w: reschedule_booking: too late to change this appointment", domain.ErrPrecondition)

	// ErrInvalidTimeSlot возвращается, когда новый слот не входит в сетку рабочего дня
	ErrInvalidTimeSlot = fmt.Errorf("%w: reschedule_booking: invalid time slot", domain.ErrValidation)

	// ErrSlotNotAvailable возвращается, когда новый слот заблокирован или занят
	ErrSlotNotAvailable = fmt.Errorf("%w: reschedule_booking: slot is not available", domain.ErrPrecondition)

	// ErrTooLateToBook возвращается, когда до начала нового слота не больше 24 часов
	ErrTooLateToBook = fmt.Errorf("%w: reschedule_booking: too late to book this slot", domain.ErrPrecondition)

	// ErrSlotConflict возвращается, когда новый слот заняли параллельно
	ErrSlotConflict = fmt.Errorf("%w: reschedule_booking: slot was taken concurrently", domain.ErrSlotConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: reschedule_booking: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: reschedule_booking: internal error", domain.ErrStorage)
)
