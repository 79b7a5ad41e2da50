package reschedule_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/coaching-scheduler/internal/api/middleware"
	"github.com/m04kA/coaching-scheduler/internal/domain"
	rescheduleBooking "github.com/m04kA/coaching-scheduler/internal/usecase/reschedule_booking"
	"github.com/m04kA/coaching-scheduler/pkg/logger"
)

type fakeUseCase struct {
	got *rescheduleBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *rescheduleBooking.Request) (*rescheduleBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	start := time.Date(2026, 6, 15, 18, 30, 0, 0, time.UTC)
	return &rescheduleBooking.Response{
		ID:          req.AppointmentID,
		UserID:      req.Caller.UserID,
		Date:        req.Date,
		Slot:        req.Slot,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Status:      string(domain.StatusScheduled),
		ServiceName: "Stress Reset",
	}, nil
}

func TestHandler_Handle(t *testing.T) {
	validBody := `{"date":"2026-06-15","slot":"2:30 PM"}`

	tests := []struct {
		name       string
		rawID      string
		body       string
		ucErr      error
		wantStatus int
	}{
		{name: "moved", body: validBody, wantStatus: http.StatusOK},
		{name: "bad id", rawID: "42", body: validBody, wantStatus: http.StatusBadRequest},
		{name: "broken json", body: `{"date":`, wantStatus: http.StatusBadRequest},
		{name: "bad date", body: `{"date":"15/06/2026","slot":"2:30 PM"}`, wantStatus: http.StatusBadRequest},
		{name: "bad slot", body: `{"date":"2026-06-15","slot":"14:30"}`, wantStatus: http.StatusBadRequest},
		{name: "not found", body: validBody, ucErr: rescheduleBooking.ErrAppointmentNotFound, wantStatus: http.StatusNotFound},
		{name: "someone else's", body: validBody, ucErr: rescheduleBooking.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "cancelled", body: validBody, ucErr: rescheduleBooking.ErrNotScheduled, wantStatus: http.StatusConflict},
		{name: "inside notice period", body: validBody, ucErr: rescheduleBooking.ErrTooLateToChange, wantStatus: http.StatusUnprocessableEntity},
		{name: "new slot too soon", body: validBody, ucErr: rescheduleBooking.ErrTooLateToBook, wantStatus: http.StatusUnprocessableEntity},
		{name: "off grid", body: validBody, ucErr: rescheduleBooking.ErrInvalidTimeSlot, wantStatus: http.StatusBadRequest},
		{name: "taken", body: validBody, ucErr: rescheduleBooking.ErrSlotNotAvailable, wantStatus: http.StatusConflict},
		{name: "lost race", body: validBody, ucErr: rescheduleBooking.ErrSlotConflict, wantStatus: http.StatusConflict},
		{name: "storage", body: validBody, ucErr: rescheduleBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.ucErr}
			h := NewHandler(uc, logger.NewNop())

			rawID := tt.rawID
			if rawID == "" {
				rawID = uuid.NewString()
			}
			caller := domain.Identity{UserID: uuid.New(), Role: domain.RoleClient}

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/"+rawID+"/reschedule", strings.NewReader(tt.body))
			req = mux.SetURLVars(req, map[string]string{"appointmentId": rawID})
			req = req.WithContext(middleware.WithIdentity(req.Context(), caller))
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var body AppointmentResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "2026-06-15", body.Date)
			assert.Equal(t, "2:30 PM", body.Slot)
			assert.Equal(t, caller, uc.got.Caller)
		})
	}
}
