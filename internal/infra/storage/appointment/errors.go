package appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotTaken возвращается, когда на это время уже есть активная запись (уникальный индекс)
	ErrSlotTaken = fmt.Errorf("%w: appointment.repository: slot already taken", domain.ErrSlotConflict)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = fmt.Errorf("%w: appointment.repository: failed to build query", domain.ErrStorage)

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = fmt.Errorf("%w: appointment.repository: failed to execute query", domain.ErrStorage)

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = fmt.Errorf("%w: appointment.repository: failed to scan row", domain.ErrStorage)
)
