package schedule

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/pkg/types"
)

// DayState is what the persistence layer knows about a range of days.
// It may cover more than one day; records outside the day asked about are ignored.
type DayState struct {
	Blocks       []*domain.AvailabilityBlock
	Appointments []*domain.Appointment
}

// LabelSet is a set of slot labels
type LabelSet map[types.SlotLabel]struct{}

// Has reports whether label is in the set
func (s LabelSet) Has(label types.SlotLabel) bool {
	_, ok := s[label]
	return ok
}

// Sorted returns the labels in clock order
func (s LabelSet) Sorted() []types.SlotLabel {
	labels := make([]types.SlotLabel, 0, len(s))
	for l := range s {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i].IsBefore(labels[j])
	})
	return labels
}

// occupancy maps each taken label of a day to the reason it is taken.
// A block wins over an appointment at the same label.
func (c *Calendar) occupancy(date time.Time, state DayState, exclude *uuid.UUID) map[types.SlotLabel]domain.SlotState {
	dayStart, dayEnd := c.DayBounds(date)
	inDay := func(t time.Time) bool {
		return !t.Before(dayStart) && t.Before(dayEnd)
	}

	taken := make(map[types.SlotLabel]domain.SlotState)

	for _, a := range state.Appointments {
		if a == nil || !a.OccupiesSlot() || !inDay(a.StartTime) {
			continue
		}
		// При переносе запись не блокирует свой текущий слот
		if exclude != nil && a.ID == *exclude {
			continue
		}
		taken[c.SlotLabelFor(a.StartTime)] = domain.SlotBooked
	}

	for _, b := range state.Blocks {
		if b == nil || !inDay(b.StartTime) {
			continue
		}
		taken[c.SlotLabelFor(b.StartTime)] = domain.SlotBlocked
	}

	return taken
}

// UnavailableSlots returns the labels of date taken by blocks or scheduled
// appointments starting that day. exclude names an appointment that must not
// count against its own slot, as when rescheduling it.
func (c *Calendar) UnavailableSlots(date time.Time, state DayState, exclude *uuid.UUID) LabelSet {
	set := make(LabelSet)
	for label := range c.occupancy(date, state, exclude) {
		set[label] = struct{}{}
	}
	return set
}

// CheckBookable returns nil if label can be booked on date at now.
//
// The label must be on the day's grid and not unavailable, and its start must
// be strictly after now + MinLeadTime.
func (c *Calendar) CheckBookable(date time.Time, label types.SlotLabel, unavailable LabelSet, now time.Time) error {
	if err := label.Validate(); err != nil {
		return ErrNotOnGrid
	}
	if !IsOnGrid(date, label) {
		return ErrNotOnGrid
	}
	if unavailable.Has(label) {
		return ErrSlotUnavailable
	}

	start, err := c.ToAbsolute(date, label)
	if err != nil {
		return err
	}
	if !start.After(now.Add(domain.MinLeadTime)) {
		return ErrInsideLeadTime
	}
	return nil
}

// IsBookable is CheckBookable as a predicate.
func (c *Calendar) IsBookable(date time.Time, label types.SlotLabel, unavailable LabelSet, now time.Time) bool {
	return c.CheckBookable(date, label, unavailable, now) == nil
}

// DaySlots builds the displayed grid of one day.
func (c *Calendar) DaySlots(date time.Time, state DayState, exclude *uuid.UUID, now time.Time) domain.DayAvailability {
	taken := c.occupancy(date, state, exclude)
	minStart := now.Add(domain.MinLeadTime)

	labels := BusinessSlotsForDay(date)
	slots := make([]domain.Slot, 0, len(labels))
	for _, label := range labels {
		// сетка генерируется из валидных меток, ошибка невозможна
		start, _ := c.ToAbsolute(date, label)

		slotState := domain.SlotOpen
		if reason, ok := taken[label]; ok {
			slotState = reason
		} else if !start.After(minStart) {
			slotState = domain.SlotTooSoon
		}

		slots = append(slots, domain.Slot{
			Label:     label,
			StartTime: start,
			State:     slotState,
		})
	}

	return domain.DayAvailability{
		Date:  c.Date(date),
		Slots: slots,
	}
}

// WeekSlots builds the grids of the week containing date.
func (c *Calendar) WeekSlots(date time.Time, state DayState, exclude *uuid.UUID, now time.Time) []domain.DayAvailability {
	dates := c.WeekDates(date)
	days := make([]domain.DayAvailability, 0, len(dates))
	for _, d := range dates {
		days = append(days, c.DaySlots(d, state, exclude, now))
	}
	return days
}
