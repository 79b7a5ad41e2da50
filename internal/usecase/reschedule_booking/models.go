package reschedule_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/pkg/types"
)

// Request модель запроса на перенос записи
type Request struct {
	Caller        domain.Identity // Кто переносит: владелец или администратор
	AppointmentID uuid.UUID       // ID записи
	Date          time.Time       // Новая дата
	Slot          types.SlotLabel // Новое время начала
}

// Response модель ответа с перенесенной записью
type Response struct {
	ID          uuid.UUID       // ID записи (не меняется)
	UserID      uuid.UUID       // ID клиента
	Date        time.Time       // Новая дата
	Slot        types.SlotLabel // Новое время начала
	StartTime   time.Time       // Абсолютное время начала
	EndTime     time.Time       // Абсолютное время окончания
	Status      string          // Статус (не меняется)
	ServiceName string          // Название услуги
}
