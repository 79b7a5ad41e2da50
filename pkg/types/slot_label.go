package types

import (
	"errors"
	"fmt"
	"time"
)

// SlotLabelLayout is the 12-hour clock layout of a slot label, e.g. "9:00 AM", "12:30 PM".
const SlotLabelLayout = "3:04 PM"

// ErrInvalidSlotLabel is returned for labels that are not in canonical "H:MM AM|PM" form.
var ErrInvalidSlotLabel = errors.New("invalid slot label")

// SlotLabel identifies a start time within a business day in 12-hour clock form.
// A label carries no date and no timezone; it only becomes an instant when
// combined with a calendar date and a location (see On).
type SlotLabel string

// NewSlotLabel builds the canonical label for hour (0-23) and minute (0-59).
func NewSlotLabel(hour, minute int) (SlotLabel, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %02d:%02d out of range", ErrInvalidSlotLabel, hour, minute)
	}
	t := time.Date(2000, time.January, 1, hour, minute, 0, 0, time.UTC)
	return SlotLabel(t.Format(SlotLabelLayout)), nil
}

// SlotLabelFromTime returns the label of t's wall clock in t's own location.
// Seconds are truncated.
func SlotLabelFromTime(t time.Time) SlotLabel {
	return SlotLabel(t.Format(SlotLabelLayout))
}

// ParseSlotLabel parses and validates s. Only the canonical form is accepted,
// so "09:00 AM" and "9:00 am" are rejected.
func ParseSlotLabel(s string) (SlotLabel, error) {
	l := SlotLabel(s)
	if err := l.Validate(); err != nil {
		return "", err
	}
	return l, nil
}

// Validate checks that the label is in canonical form.
func (l SlotLabel) Validate() error {
	t, err := time.Parse(SlotLabelLayout, string(l))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidSlotLabel, string(l))
	}
	if t.Format(SlotLabelLayout) != string(l) {
		return fmt.Errorf("%w: %q is not canonical", ErrInvalidSlotLabel, string(l))
	}
	return nil
}

// Clock returns the 24-hour clock fields of the label.
func (l SlotLabel) Clock() (hour, minute int, err error) {
	if err := l.Validate(); err != nil {
		return 0, 0, err
	}
	t, _ := time.Parse(SlotLabelLayout, string(l))
	return t.Hour(), t.Minute(), nil
}

// MinutesOfDay returns minutes since midnight.
func (l SlotLabel) MinutesOfDay() (int, error) {
	h, m, err := l.Clock()
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// On returns the instant of this label on the given calendar day in loc.
func (l SlotLabel) On(year int, month time.Month, day int, loc *time.Location) (time.Time, error) {
	h, m, err := l.Clock()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, month, day, h, m, 0, 0, loc), nil
}

// AddMinutes returns the label shifted by minutes. It fails if the result
// leaves the day.
func (l SlotLabel) AddMinutes(minutes int) (SlotLabel, error) {
	total, err := l.MinutesOfDay()
	if err != nil {
		return "", err
	}
	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q%+d min leaves the day", ErrInvalidSlotLabel, string(l), minutes)
	}
	return NewSlotLabel(total/60, total%60)
}

// IsBefore compares labels by clock time.
// Callers must pass validated labels: an invalid label compares as midnight.
func (l SlotLabel) IsBefore(other SlotLabel) bool {
	a, _ := l.MinutesOfDay()
	b, _ := other.MinutesOfDay()
	return a < b
}

func (l SlotLabel) String() string {
	return string(l)
}

func (l SlotLabel) IsZero() bool {
	return l == ""
}
