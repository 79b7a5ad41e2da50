package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a note left through the site's contact widget
type ContactMessage struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
