package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID        uuid.UUID       // ID клиента
	ServiceTypeID uuid.UUID       // ID услуги
	Date          time.Time       // Дата записи (календарная, без времени)
	Slot          types.SlotLabel // Время начала слота (например, "10:30 AM")
	Notes         *string         // Комментарий клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID            uuid.UUID       // ID созданной записи
	UserID        uuid.UUID       // ID клиента
	ServiceTypeID uuid.UUID       // ID услуги
	Date          time.Time       // Дата записи
	Slot          types.SlotLabel // Время начала
	StartTime     time.Time       // Абсолютное время начала
	EndTime       time.Time       // Абсолютное время окончания
	Status        string          // Статус записи

	// Денормализованные данные
	ServiceName string  // Название услуги
	ClientName  *string // Имя клиента из профиля
	ClientEmail *string // Email клиента из профиля
	Notes       *string // Комментарий

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
