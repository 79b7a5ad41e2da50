package domain

import (
	"time"

	"github.com/google/uuid"
)

// Score is a persisted assessment result. It is never updated; a retake adds a new row.
type Score struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TestType  TestType
	Breakdown ScoreBreakdown
	Answers   map[string]string
	CreatedAt time.Time
}
