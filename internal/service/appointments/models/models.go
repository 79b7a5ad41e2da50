package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/internal/schedule"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// GetUserAppointmentsRequest запрос на получение записей клиента
type GetUserAppointmentsRequest struct {
	Caller domain.Identity `json:"-"`
	UserID uuid.UUID       `json:"userId"`
	Status *string         `json:"status,omitempty"`
}

// ListAppointmentsRequest запрос администратора на получение записей за период
type ListAppointmentsRequest struct {
	Caller   domain.Identity `json:"-"`
	FromDate *time.Time      `json:"fromDate,omitempty"` // Первая дата периода (включительно)
	ToDate   *time.Time      `json:"toDate,omitempty"`   // Последняя дата периода (включительно)
	Status   *string         `json:"status,omitempty"`
}

// CompleteRequest запрос на завершение записи
type CompleteRequest struct {
	SessionNotes *string `json:"sessionNotes,omitempty" validate:"omitempty,max=10000"`
}

// MeetingLinkRequest запрос на установку ссылки на видеовстречу
// Пустая ссылка (nil) удаляет текущую
type MeetingLinkRequest struct {
	MeetingLink *string `json:"meetingLink" validate:"omitempty,url,max=2048"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	ServiceTypeID   uuid.UUID `json:"serviceTypeId"`
	Date            string    `json:"date"` // "2026-06-10" в часовом поясе практики
	Slot            string    `json:"slot"` // "10:30 AM"
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`

	// Денормализованные данные
	ServiceName string  `json:"serviceName"`
	ClientName  *string `json:"clientName,omitempty"`
	ClientEmail *string `json:"clientEmail,omitempty"`

	Notes        *string `json:"notes,omitempty"`
	SessionNotes *string `json:"sessionNotes,omitempty"`
	MeetingLink  *string `json:"meetingLink,omitempty"`

	CancelledAt *string   `json:"cancelledAt,omitempty"` // ISO 8601 format
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// ClientListResponse ответ со списком клиентов, когда-либо записывавшихся
type ClientListResponse struct {
	UserIDs []uuid.UUID `json:"userIds"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
// Дата и слот вычисляются в часовом поясе практики
func FromDomainAppointment(a *domain.Appointment, cal *schedule.Calendar) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:              a.ID,
		UserID:          a.UserID,
		ServiceTypeID:   a.ServiceTypeID,
		Date:            cal.Today(a.StartTime).Format(domain.DateFormat),
		Slot:            cal.SlotLabelFor(a.StartTime).String(),
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		DurationMinutes: int(a.Duration() / time.Minute),
		Status:          string(a.Status),
		ServiceName:     a.ServiceName,
		ClientName:      a.ClientName,
		ClientEmail:     a.ClientEmail,
		Notes:           a.Notes,
		SessionNotes:    a.SessionNotes,
		MeetingLink:     a.MeetingLink,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment, cal *schedule.Calendar) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if r := FromDomainAppointment(a, cal); r != nil {
			resp.Appointments = append(resp.Appointments, *r)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
