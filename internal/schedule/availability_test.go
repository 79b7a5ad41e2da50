package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/pkg/types"
)

func at(t *testing.T, cal *Calendar, date time.Time, label types.SlotLabel) time.Time {
	t.Helper()
	abs, err := cal.ToAbsolute(date, label)
	require.NoError(t, err)
	return abs
}

func block(t *testing.T, cal *Calendar, date time.Time, label types.SlotLabel) *domain.AvailabilityBlock {
	start := at(t, cal, date, label)
	return &domain.AvailabilityBlock{
		ID:        uuid.New(),
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
	}
}

func appointment(t *testing.T, cal *Calendar, date time.Time, label types.SlotLabel, status domain.AppointmentStatus) *domain.Appointment {
	start := at(t, cal, date, label)
	return &domain.Appointment{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Status:    status,
	}
}

func TestCalendar_UnavailableSlots(t *testing.T) {
	cal := newYorkCalendar(t)
	day := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	nextDay := day.AddDate(0, 0, 1)

	appt := appointment(t, cal, day, "4:30 PM", domain.StatusScheduled)
	state := DayState{
		Blocks: []*domain.AvailabilityBlock{
			block(t, cal, day, "3:00 PM"),
			block(t, cal, nextDay, "9:00 AM"),
		},
		Appointments: []*domain.Appointment{
			appt,
			appointment(t, cal, day, "10:00 AM", domain.StatusCancelled),
			appointment(t, cal, day, "11:00 AM", domain.StatusCompleted),
			appointment(t, cal, nextDay, "1:00 PM", domain.StatusScheduled),
		},
	}

	got := cal.UnavailableSlots(day, state, nil)
	assert.Equal(t, []types.SlotLabel{"3:00 PM", "4:30 PM"}, got.Sorted())

	// отмена освобождает слот
	appt.Status = domain.StatusCancelled
	got = cal.UnavailableSlots(day, state, nil)
	assert.Equal(t, []types.SlotLabel{"3:00 PM"}, got.Sorted())
}

func TestCalendar_UnavailableSlots_DayBoundaryInBusinessZone(t *testing.T) {
	cal := newYorkCalendar(t)
	day := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)

	// 02:00 UTC on June 11 is still 10:00 PM on June 10 in New York
	late := &domain.AvailabilityBlock{
		ID:        uuid.New(),
		StartTime: time.Date(2026, time.June, 11, 2, 0, 0, 0, time.UTC),
	}
	// 03:30 UTC on June 10 is 11:30 PM on June 9 in New York
	early := &domain.AvailabilityBlock{
		ID:        uuid.New(),
		StartTime: time.Date(2026, time.June, 10, 3, 30, 0, 0, time.UTC),
	}

	got := cal.UnavailableSlots(day, DayState{Blocks: []*domain.AvailabilityBlock{late, early}}, nil)
	assert.Equal(t, []types.SlotLabel{"10:00 PM"}, got.Sorted())
}

func TestCalendar_UnavailableSlots_ExcludesRescheduledAppointment(t *testing.T) {
	cal := newYorkCalendar(t)
	day := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)

	own := appointment(t, cal, day, "2:00 PM", domain.StatusScheduled)
	other := appointment(t, cal, day, "2:30 PM", domain.StatusScheduled)
	state := DayState{Appointments: []*domain.Appointment{own, other}}

	assert.True(t, cal.UnavailableSlots(day, state, nil).Has("2:00 PM"))

	got := cal.UnavailableSlots(day, state, &own.ID)
	assert.False(t, got.Has("2:00 PM"))
	assert.True(t, got.Has("2:30 PM"))
}

func TestCalendar_CheckBookable(t *testing.T) {
	cal := newYorkCalendar(t)
	// вторник 10:00 по Нью-Йорку
	now := time.Date(2026, time.June, 9, 10, 0, 0, 0, cal.Location())
	day := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, time.June, 13, 0, 0, 0, 0, time.UTC)

	unavailable := LabelSet{"3:00 PM": {}}

	tests := []struct {
		name    string
		date    time.Time
		label   types.SlotLabel
		wantErr error
	}{
		{name: "now plus 25h", date: day, label: "11:00 AM"},
		{name: "now plus 23h", date: day, label: "9:00 AM", wantErr: ErrInsideLeadTime},
		{name: "exactly now plus 24h", date: day, label: "10:00 AM", wantErr: ErrInsideLeadTime},
		{name: "now plus 24h30m", date: day, label: "10:30 AM"},
		{name: "last slot of the day", date: day, label: "7:00 PM"},
		{name: "blocked", date: day, label: "3:00 PM", wantErr: ErrSlotUnavailable},
		{name: "after closing", date: day, label: "7:30 PM", wantErr: ErrNotOnGrid},
		{name: "off the half hour", date: day, label: "11:15 AM", wantErr: ErrNotOnGrid},
		{name: "weekday opening on weekend", date: saturday, label: "9:00 AM", wantErr: ErrNotOnGrid},
		{name: "weekend opening", date: saturday, label: "10:00 AM"},
		{name: "malformed", date: day, label: "11:00", wantErr: ErrNotOnGrid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cal.CheckBookable(tt.date, tt.label, unavailable, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, cal.IsBookable(tt.date, tt.label, unavailable, now))
				return
			}
			assert.NoError(t, err)
			assert.True(t, cal.IsBookable(tt.date, tt.label, unavailable, now))
		})
	}
}

func TestCalendar_CheckBookable_ErrorClasses(t *testing.T) {
	assert.ErrorIs(t, ErrNotOnGrid, domain.ErrValidation)
	assert.ErrorIs(t, ErrSlotUnavailable, domain.ErrPrecondition)
	assert.ErrorIs(t, ErrInsideLeadTime, domain.ErrPrecondition)
}

func TestCalendar_DaySlots(t *testing.T) {
	cal := newYorkCalendar(t)
	now := time.Date(2026, time.June, 9, 10, 0, 0, 0, cal.Location())
	day := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)

	state := DayState{
		Blocks:       []*domain.AvailabilityBlock{block(t, cal, day, "3:00 PM")},
		Appointments: []*domain.Appointment{appointment(t, cal, day, "4:30 PM", domain.StatusScheduled)},
	}

	got := cal.DaySlots(day, state, nil, now)
	require.Len(t, got.Slots, 21)

	states := make(map[types.SlotLabel]domain.SlotState)
	for _, s := range got.Slots {
		states[s.Label] = s.State
	}

	assert.Equal(t, domain.SlotTooSoon, states["9:00 AM"])
	assert.Equal(t, domain.SlotTooSoon, states["10:00 AM"])
	assert.Equal(t, domain.SlotOpen, states["10:30 AM"])
	assert.Equal(t, domain.SlotBlocked, states["3:00 PM"])
	assert.Equal(t, domain.SlotBooked, states["4:30 PM"])
	assert.Equal(t, 21-3-2, got.OpenCount())
}

func TestCalendar_WeekSlots(t *testing.T) {
	cal := newYorkCalendar(t)
	now := time.Date(2026, time.June, 1, 8, 0, 0, 0, cal.Location())

	days := cal.WeekSlots(time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC), DayState{}, nil, now)

	require.Len(t, days, 7)
	assert.Len(t, days[0].Slots, 19) // sunday
	assert.Len(t, days[3].Slots, 21) // wednesday
	assert.Len(t, days[6].Slots, 19) // saturday
	for _, d := range days {
		assert.Equal(t, len(d.Slots), d.OpenCount())
	}
}
