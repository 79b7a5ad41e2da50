package get_week_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

// Request модель запроса на получение сетки слотов недели
type Request struct {
	Date                 time.Time  // Любая дата недели (недели начинаются с воскресенья)
	ExcludeAppointmentID *uuid.UUID // Запись, которую переносят: её текущий слот показывается свободным
}

// Response модель ответа с сеткой слотов недели
type Response struct {
	WeekStart time.Time                // Воскресенье недели
	Days      []domain.DayAvailability // Семь дней, по порядку
}
