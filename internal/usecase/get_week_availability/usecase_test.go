package get_week_availability

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/internal/schedule"
	"github.com/m04kA/coaching-scheduler/pkg/logger"
	"github.com/m04kA/coaching-scheduler/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeAppointments struct {
	items  []*domain.Appointment
	err    error
	filter domain.AppointmentsFilter
}

func (f *fakeAppointments) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.filter = filter
	return f.items, f.err
}

type fakeBlocks struct {
	items    []*domain.AvailabilityBlock
	err      error
	from, to time.Time
}

func (f *fakeBlocks) ListBetween(_ context.Context, from, to time.Time) ([]*domain.AvailabilityBlock, error) {
	f.from, f.to = from, to
	return f.items, f.err
}

func newUseCase(t *testing.T, appts *fakeAppointments, blocks *fakeBlocks, now time.Time) (*UseCase, *schedule.Calendar) {
	t.Helper()
	cal, err := schedule.LoadCalendar("America/New_York")
	require.NoError(t, err)

	uc := NewUseCase(appts, blocks, cal, logger.NewNop())
	uc.timeProvider = fixedTime{now: now}
	return uc, cal
}

func slotState(t *testing.T, day domain.DayAvailability, label string) domain.SlotState {
	t.Helper()
	for _, s := range day.Slots {
		if s.Label == types.SlotLabel(label) {
			return s.State
		}
	}
	t.Fatalf("label %s not in grid", label)
	return ""
}

func TestUseCase_Execute(t *testing.T) {
	cal, err := schedule.LoadCalendar("America/New_York")
	require.NoError(t, err)
	loc := cal.Location()

	// вторник 9 июня 2026, 10:00 по Нью-Йорку
	now := time.Date(2026, 6, 9, 10, 0, 0, 0, loc)
	booked := &domain.Appointment{
		ID:        uuid.New(),
		StartTime: time.Date(2026, 6, 11, 14, 0, 0, 0, loc),
		Status:    domain.StatusScheduled,
	}
	appts := &fakeAppointments{items: []*domain.Appointment{booked}}
	blocks := &fakeBlocks{items: []*domain.AvailabilityBlock{
		{StartTime: time.Date(2026, 6, 12, 9, 0, 0, 0, loc)},
	}}

	uc, _ := newUseCase(t, appts, blocks, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	require.Len(t, resp.Days, 7)
	assert.Equal(t, time.Date(2026, 6, 7, 0, 0, 0, 0, loc), resp.WeekStart)
	assert.Equal(t, resp.WeekStart, blocks.from)
	assert.Equal(t, time.Date(2026, 6, 14, 0, 0, 0, 0, loc), blocks.to)
	assert.True(t, appts.filter.OnlySlot)

	assert.Len(t, resp.Days[0].Slots, 19) // воскресенье
	assert.Len(t, resp.Days[1].Slots, 21)

	assert.Equal(t, domain.SlotTooSoon, slotState(t, resp.Days[3], "10:00 AM"))
	assert.Equal(t, domain.SlotOpen, slotState(t, resp.Days[3], "10:30 AM"))
	assert.Equal(t, domain.SlotBooked, slotState(t, resp.Days[4], "2:00 PM"))
	assert.Equal(t, domain.SlotBlocked, slotState(t, resp.Days[5], "9:00 AM"))

	t.Run("excluded appointment frees its own slot", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{
			Date:                 time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
			ExcludeAppointmentID: &booked.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.SlotOpen, slotState(t, resp.Days[4], "2:00 PM"))
	})
}

func TestUseCase_Execute_Errors(t *testing.T) {
	now := time.Date(2026, 6, 9, 14, 0, 0, 0, time.UTC)
	date := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     *Request
		appts   *fakeAppointments
		blocks  *fakeBlocks
		wantErr error
	}{
		{
			name:    "zero date",
			req:     &Request{},
			appts:   &fakeAppointments{},
			blocks:  &fakeBlocks{},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "blocks storage failure",
			req:     &Request{Date: date},
			appts:   &fakeAppointments{},
			blocks:  &fakeBlocks{err: errors.New("db down")},
			wantErr: ErrInternal,
		},
		{
			name:    "appointments storage failure",
			req:     &Request{Date: date},
			appts:   &fakeAppointments{err: errors.New("db down")},
			blocks:  &fakeBlocks{},
			wantErr: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newUseCase(t, tt.appts, tt.blocks, now)
			resp, err := uc.Execute(context.Background(), tt.req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
