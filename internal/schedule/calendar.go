// Package schedule turns blocks, appointments and the current time into
// bookable half-hour slots of the practice's business days.
//
// Everything here is pure: callers pass in the state of a day and the
// current time, and nothing is read from the clock or the database.
package schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/pkg/types"
)

// Calendar anchors slot math to the business timezone.
//
// A calendar date is always read from its own year/month/day fields without
// converting it to the business timezone. Instants (block and appointment
// starts, now) are converted into the business timezone before comparison.
type Calendar struct {
	loc *time.Location
}

// NewCalendar creates a calendar for loc. A nil loc means UTC.
func NewCalendar(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{loc: loc}
}

// LoadCalendar creates a calendar for an IANA timezone name.
func LoadCalendar(name string) (*Calendar, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q: %v", domain.ErrValidation, name, err)
	}
	return NewCalendar(loc), nil
}

// Location returns the business timezone.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Date returns midnight of the calendar date in the business timezone.
func (c *Calendar) Date(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.loc)
}

// ParseDate parses "YYYY-MM-DD" as a business calendar date.
func (c *Calendar) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DateFormat, s, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", domain.ErrValidation, s)
	}
	return t, nil
}

// Today returns the business calendar date of now.
func (c *Calendar) Today(now time.Time) time.Time {
	return c.Date(now.In(c.loc))
}

// DayBounds returns [start, end) of the calendar date in the business timezone.
func (c *Calendar) DayBounds(date time.Time) (time.Time, time.Time) {
	start := c.Date(date)
	return start, start.AddDate(0, 0, 1)
}

// ToAbsolute returns the instant of label on date.
func (c *Calendar) ToAbsolute(date time.Time, label types.SlotLabel) (time.Time, error) {
	y, m, d := date.Date()
	t, err := label.On(y, m, d, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return t, nil
}

// SlotLabelFor returns the label of t's wall clock in the business timezone.
func (c *Calendar) SlotLabelFor(t time.Time) types.SlotLabel {
	return types.SlotLabelFromTime(t.In(c.loc))
}

// WeekDates returns the seven dates of the week containing date. Weeks start on Sunday.
func (c *Calendar) WeekDates(date time.Time) []time.Time {
	day := c.Date(date)
	sunday := day.AddDate(0, 0, -int(day.Weekday()))

	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = sunday.AddDate(0, 0, i)
	}
	return dates
}

// WeekBounds returns [start, end) of the week containing date.
func (c *Calendar) WeekBounds(date time.Time) (time.Time, time.Time) {
	dates := c.WeekDates(date)
	return dates[0], dates[6].AddDate(0, 0, 1)
}

// IsWeekend reports whether the calendar date is a Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	y, m, d := date.Date()
	switch time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Weekday() {
	case time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}

// BusinessSlotsForDay returns the day's slot labels in order, from the opening
// hour through BusinessEndHour:00 inclusive at SlotDurationMinutes steps.
// Only the weekday of date matters.
func BusinessSlotsForDay(date time.Time) []types.SlotLabel {
	startHour := domain.WeekdayStartHour
	if IsWeekend(date) {
		startHour = domain.WeekendStartHour
	}

	labels := make([]types.SlotLabel, 0)
	for minutes := startHour * 60; minutes <= domain.BusinessEndHour*60; minutes += domain.SlotDurationMinutes {
		// hours stay within 0..23, so NewSlotLabel cannot fail here
		label, _ := types.NewSlotLabel(minutes/60, minutes%60)
		labels = append(labels, label)
	}
	return labels
}

// IsOnGrid reports whether label is one of the day's business slots.
func IsOnGrid(date time.Time, label types.SlotLabel) bool {
	for _, l := range BusinessSlotsForDay(date) {
		if l == label {
			return true
		}
	}
	return false
}
