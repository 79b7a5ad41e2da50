package domain

import "time"

// Business hours. A day's slot grid depends only on whether the date is a weekend.
const (
	WeekdayStartHour    = 9
	WeekendStartHour    = 10
	BusinessEndHour     = 19 // last bookable start is 7:00 PM, inclusive
	SlotDurationMinutes = 30
)

// Booking rules
const (
	// MinLeadTime is the minimum gap between now and a slot's start for it to be bookable.
	MinLeadTime = 24 * time.Hour

	// ChangeNoticePeriod gates whether an existing appointment may still be
	// cancelled or rescheduled by its owner, measured against its current start.
	ChangeNoticePeriod = 24 * time.Hour

	DefaultServiceDurationMinutes = 30
)

// DefaultBusinessTimezone anchors all timestamp math.
const DefaultBusinessTimezone = "America/New_York"

// Validation limits
const (
	MaxNotesLength          = 1000
	MaxSessionNotesLength   = 10000
	MaxContactMessageLength = 2000
	MaxServiceNameLength    = 120
	MinServiceDuration      = 15
	MaxServiceDuration      = 240
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Assessment thresholds. The recommendation and insight thresholds serve
// different views and are deliberately independent.
const (
	// KnowledgeWeakCorrect: a knowledge section with fewer correct answers emits its topic recommendations.
	KnowledgeWeakCorrect = 4
	// HabitsWeakScore: a habits score below this emits the habits recommendation.
	HabitsWeakScore = 60.0

	// StrengthPercent and OpportunityPercent classify sections in the results view.
	StrengthPercent    = 80.0
	OpportunityPercent = 60.0
)

// ScheduledStatuses occupy their slot for availability purposes.
var ScheduledStatuses = []AppointmentStatus{
	StatusScheduled,
}
