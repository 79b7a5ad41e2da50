package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

// SubmitRequest сообщение из формы обратной связи
type SubmitRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=320"`
	Message string `json:"message" validate:"required,max=2000"`
}

// Normalize убирает пробелы по краям полей
func (r *SubmitRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)
}

// ToDomain конвертирует запрос в domain модель
func (r *SubmitRequest) ToDomain() *domain.ContactMessage {
	return &domain.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Message: r.Message,
	}
}

// MessageResponse ответ с данными сообщения
type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessageListResponse ответ со списком сообщений
type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// FromDomainMessage конвертирует domain модель в DTO
func FromDomainMessage(m *domain.ContactMessage) *MessageResponse {
	if m == nil {
		return nil
	}
	return &MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomainMessageList конвертирует список domain моделей в DTO
func FromDomainMessageList(items []*domain.ContactMessage) *MessageListResponse {
	resp := &MessageListResponse{Messages: make([]MessageResponse, 0, len(items))}
	for _, m := range items {
		if r := FromDomainMessage(m); r != nil {
			resp.Messages = append(resp.Messages, *r)
		}
	}
	return resp
}
