package appointments

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
	appointmentRepo "github.com/m04kA/coaching-scheduler/internal/infra/storage/appointment"
	"github.com/m04kA/coaching-scheduler/internal/schedule"
	"github.com/m04kA/coaching-scheduler/internal/service/appointments/models"
	"github.com/m04kA/coaching-scheduler/pkg/logger"
	"github.com/m04kA/coaching-scheduler/pkg/ptr"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeRepo struct {
	byID      map[uuid.UUID]*domain.Appointment
	clientIDs []uuid.UUID
	lastList  domain.AppointmentsFilter
	err       error
	cancelled []uuid.UUID
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastList = filter
	if f.err != nil {
		return nil, f.err
	}
	items := make([]*domain.Appointment, 0, len(f.byID))
	for _, a := range f.byID {
		items = append(items, a)
	}
	return items, nil
}

func (f *fakeRepo) GetClientIDs(_ context.Context) ([]uuid.UUID, error) {
	return f.clientIDs, f.err
}

func (f *fakeRepo) Cancel(_ context.Context, id uuid.UUID) error {
	f.cancelled = append(f.cancelled, id)
	f.byID[id].Status = domain.StatusCancelled
	return nil
}

func (f *fakeRepo) Complete(_ context.Context, id uuid.UUID, notes *string) error {
	f.byID[id].Status = domain.StatusCompleted
	f.byID[id].SessionNotes = notes
	return nil
}

func (f *fakeRepo) SetMeetingLink(_ context.Context, id uuid.UUID, link *string) error {
	a, ok := f.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.MeetingLink = link
	return nil
}

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var (
	ownerID = uuid.New()
	adminID = uuid.New()
)

func owner() domain.Identity { return domain.Identity{UserID: ownerID, Role: domain.RoleClient} }
func admin() domain.Identity { return domain.Identity{UserID: adminID, Role: domain.RoleAdmin} }

type fixture struct {
	loc  *time.Location
	repo *fakeRepo
	appt *domain.Appointment
}

// Запись клиента: среда 10 июня 2026, 2:00 PM по Нью-Йорку, 60 минут
func newFixture(t *testing.T) *fixture {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	start := time.Date(2026, 6, 10, 14, 0, 0, 0, loc)
	appt := &domain.Appointment{
		ID:          uuid.New(),
		UserID:      ownerID,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Status:      domain.StatusScheduled,
		ServiceName: "Budgeting Session",
	}

	return &fixture{
		loc:  loc,
		repo: &fakeRepo{byID: map[uuid.UUID]*domain.Appointment{appt.ID: appt}},
		appt: appt,
	}
}

func (f *fixture) service(now time.Time) *Service {
	s := NewService(f.repo, fakeTx{}, schedule.NewCalendar(f.loc), logger.NewNop())
	s.timeProvider = fixedTime{now: now}
	return s
}

func TestService_GetByID(t *testing.T) {
	tests := []struct {
		name    string
		caller  domain.Identity
		wantErr error
	}{
		{name: "owner", caller: owner()},
		{name: "admin", caller: admin()},
		{name: "stranger", caller: domain.Identity{UserID: uuid.New(), Role: domain.RoleClient}, wantErr: ErrAccessDenied},
		{name: "anonymous", caller: domain.Identity{}, wantErr: ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			resp, err := f.service(time.Now()).GetByID(context.Background(), tt.caller, f.appt.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "2026-06-10", resp.Date)
			assert.Equal(t, "2:00 PM", resp.Slot)
			assert.Equal(t, 60, resp.DurationMinutes)
			assert.Equal(t, "scheduled", resp.Status)
		})
	}
}

func TestService_GetByID_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.service(time.Now()).GetByID(context.Background(), admin(), uuid.New())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_GetUserAppointments(t *testing.T) {
	f := newFixture(t)
	svc := f.service(time.Now())

	resp, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		Caller: owner(),
		UserID: ownerID,
		Status: ptr.Ptr("scheduled"),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)
	require.NotNil(t, f.repo.lastList.UserID)
	assert.Equal(t, ownerID, *f.repo.lastList.UserID)
	require.NotNil(t, f.repo.lastList.Status)
	assert.Equal(t, domain.StatusScheduled, *f.repo.lastList.Status)

	_, err = svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		Caller: owner(),
		UserID: ownerID,
		Status: ptr.Ptr("pending"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		Caller: domain.Identity{UserID: uuid.New(), Role: domain.RoleClient},
		UserID: ownerID,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_ListAppointments(t *testing.T) {
	f := newFixture(t)
	svc := f.service(time.Now())

	from := time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)

	resp, err := svc.ListAppointments(context.Background(), &models.ListAppointmentsRequest{
		Caller:   admin(),
		FromDate: &from,
		ToDate:   &to,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)

	require.NotNil(t, f.repo.lastList.From)
	require.NotNil(t, f.repo.lastList.To)
	assert.True(t, time.Date(2026, 6, 8, 0, 0, 0, 0, f.loc).Equal(*f.repo.lastList.From))
	assert.True(t, time.Date(2026, 6, 13, 0, 0, 0, 0, f.loc).Equal(*f.repo.lastList.To))

	_, err = svc.ListAppointments(context.Background(), &models.ListAppointmentsRequest{
		Caller:   admin(),
		FromDate: &to,
		ToDate:   &from,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ListAppointments(context.Background(), &models.ListAppointmentsRequest{Caller: owner()})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_ListClients(t *testing.T) {
	f := newFixture(t)
	f.repo.clientIDs = []uuid.UUID{ownerID}
	svc := f.service(time.Now())

	resp, err := svc.ListClients(context.Background(), admin())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{ownerID}, resp.UserIDs)

	_, err = svc.ListClients(context.Background(), owner())
	assert.ErrorIs(t, err, ErrAccessDenied)

	f.repo.err = errors.New("db down")
	_, err = svc.ListClients(context.Background(), admin())
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestService_Cancel(t *testing.T) {
	tests := []struct {
		name    string
		caller  domain.Identity
		now     func(loc *time.Location) time.Time
		status  domain.AppointmentStatus
		wantErr error
	}{
		{
			name:   "owner with notice",
			caller: owner(),
			now: func(loc *time.Location) time.Time {
				return time.Date(2026, 6, 9, 10, 0, 0, 0, loc)
			},
		},
		{
			name:   "owner exactly 24h before",
			caller: owner(),
			now: func(loc *time.Location) time.Time {
				return time.Date(2026, 6, 9, 14, 0, 0, 0, loc)
			},
		},
		{
			name:   "owner inside notice period",
			caller: owner(),
			now: func(loc *time.Location) time.Time {
				return time.Date(2026, 6, 9, 15, 0, 0, 0, loc)
			},
			wantErr: ErrTooLateToCancel,
		},
		{
			name:   "admin inside notice period",
			caller: admin(),
			now: func(loc *time.Location) time.Time {
				return time.Date(2026, 6, 10, 13, 0, 0, 0, loc)
			},
		},
		{
			name:   "stranger",
			caller: domain.Identity{UserID: uuid.New(), Role: domain.RoleClient},
			now: func(loc *time.Location) time.Time {
				return time.Date(2026, 6, 1, 10, 0, 0, 0, loc)
			},
			wantErr: ErrAccessDenied,
		},
		{
			name:   "already cancelled",
			caller: admin(),
			status: domain.StatusCancelled,
			now: func(loc *time.Location) time.Time {
				return time.Date(2026, 6, 1, 10, 0, 0, 0, loc)
			},
			wantErr: ErrNotScheduled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.status != "" {
				f.appt.Status = tt.status
			}

			err := f.service(tt.now(f.loc)).Cancel(context.Background(), tt.caller, f.appt.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, f.repo.cancelled)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []uuid.UUID{f.appt.ID}, f.repo.cancelled)
			assert.Equal(t, domain.StatusCancelled, f.appt.Status)
		})
	}
}

func TestService_Complete(t *testing.T) {
	f := newFixture(t)
	svc := f.service(time.Now())

	err := svc.Complete(context.Background(), owner(), f.appt.ID, &models.CompleteRequest{})
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Complete(context.Background(), admin(), f.appt.ID, &models.CompleteRequest{SessionNotes: ptr.Ptr("went well")})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, f.appt.Status)
	assert.Equal(t, "went well", ptr.Value(f.appt.SessionNotes))

	err = svc.Complete(context.Background(), admin(), f.appt.ID, &models.CompleteRequest{})
	assert.ErrorIs(t, err, ErrNotScheduled)
}

func TestService_SetMeetingLink(t *testing.T) {
	tests := []struct {
		name    string
		caller  domain.Identity
		link    *string
		want    *string
		wantErr error
	}{
		{name: "set", caller: admin(), link: ptr.Ptr("https://meet.example.com/abc"), want: ptr.Ptr("https://meet.example.com/abc")},
		{name: "clear with empty", caller: admin(), link: ptr.Ptr("")},
		{name: "clear with null", caller: admin()},
		{name: "not a url", caller: admin(), link: ptr.Ptr("meet me"), wantErr: ErrInvalidInput},
		{name: "client", caller: owner(), link: ptr.Ptr("https://meet.example.com/abc"), wantErr: ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.appt.MeetingLink = ptr.Ptr("https://old.example.com")

			resp, err := f.service(time.Now()).SetMeetingLink(context.Background(), tt.caller, f.appt.ID, &models.MeetingLinkRequest{MeetingLink: tt.link})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.MeetingLink)
		})
	}
}
