package domain

import (
	"time"

	"github.com/google/uuid"
)

// ServiceType is a bookable offering of the practice (e.g. "Budgeting Session")
type ServiceType struct {
	ID              uuid.UUID
	Name            string
	Description     string
	DurationMinutes int
	Price           *float64
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DurationOrDefault returns the service length, falling back to the default slot length
func (s *ServiceType) DurationOrDefault() time.Duration {
	if s == nil || s.DurationMinutes <= 0 {
		return DefaultServiceDurationMinutes * time.Minute
	}
	return time.Duration(s.DurationMinutes) * time.Minute
}
