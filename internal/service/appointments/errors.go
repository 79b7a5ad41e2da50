package appointments

import (
	"errors"
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrNotScheduled возвращается при попытке изменить отмененную или завершенную запись
	ErrNotScheduled = fmt.Errorf("%w: appointment is not scheduled", domain.ErrPrecondition)

	// ErrTooLateToCancel возвращается, когда клиент отменяет запись меньше чем за 24 часа
	ErrTooLateToCancel = fmt.Errorf("%w: too late to cancel this appointment", domain.ErrPrecondition)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: appointments service: internal error", domain.ErrStorage)
)
