package profileservice

import "github.com/google/uuid"

// Profile профиль пользователя из сервиса идентификации
type Profile struct {
	UserID uuid.UUID `json:"user_id"`
	Name   *string   `json:"name"`
	Email  *string   `json:"email"`
}
