package domain

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityBlock marks a slot the practice deliberately made unbookable.
// Blocks are identified by their start instant.
type AvailabilityBlock struct {
	ID        uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	CreatedAt time.Time
}
