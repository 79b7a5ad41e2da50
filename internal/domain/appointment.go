package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Appointment represents a booked coaching session
type Appointment struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ServiceTypeID uuid.UUID
	StartTime     time.Time
	EndTime       time.Time
	Status        AppointmentStatus

	// Denormalized for history and the admin dashboard
	ServiceName string
	ClientName  *string
	ClientEmail *string

	Notes        *string // free text left by the client when booking
	SessionNotes *string // written by the coach after the session
	MeetingLink  *string

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OccupiesSlot returns true if the appointment blocks its slot for availability purposes
func (a *Appointment) OccupiesSlot() bool {
	return a.Status == StatusScheduled
}

// IsScheduled returns true if the appointment is still upcoming
func (a *Appointment) IsScheduled() bool {
	return a.Status == StatusScheduled
}

// CanBeChangedBy reports whether the owner may still cancel or reschedule at now.
// The appointment must be scheduled and start at least ChangeNoticePeriod after now.
func (a *Appointment) CanBeChangedBy(now time.Time) bool {
	if !a.IsScheduled() {
		return false
	}
	return !a.StartTime.Before(now.Add(ChangeNoticePeriod))
}

// Duration returns the booked length of the appointment
func (a *Appointment) Duration() time.Duration {
	return a.EndTime.Sub(a.StartTime)
}

// AppointmentsFilter filters appointment listings
type AppointmentsFilter struct {
	UserID   *uuid.UUID         // only this client's appointments
	From     *time.Time         // start_time >= From
	To       *time.Time         // start_time < To
	Status   *AppointmentStatus // exact status
	OnlySlot bool               // only appointments that occupy a slot (scheduled)
}
