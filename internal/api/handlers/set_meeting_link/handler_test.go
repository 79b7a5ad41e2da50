package set_meeting_link

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/coaching-scheduler/internal/api/middleware"
	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/internal/service/appointments"
	"github.com/m04kA/coaching-scheduler/internal/service/appointments/models"
	"github.com/m04kA/coaching-scheduler/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) SetMeetingLink(_ context.Context, _ domain.Identity, id uuid.UUID, req *models.MeetingLinkRequest) (*models.AppointmentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentResponse{ID: id, MeetingLink: req.MeetingLink}, nil
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
	}{
		{name: "set", body: `{"meetingLink":"https://meet.example.com/abc"}`, wantStatus: http.StatusOK},
		{name: "clear", body: `{"meetingLink":null}`, wantStatus: http.StatusOK},
		{name: "broken body", body: `[`, wantStatus: http.StatusBadRequest},
		{name: "invalid url", body: `{"meetingLink":"zoom"}`, svcErr: appointments.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "not found", body: `{"meetingLink":null}`, svcErr: appointments.ErrAppointmentNotFound, wantStatus: http.StatusNotFound},
		{name: "not admin", body: `{"meetingLink":null}`, svcErr: appointments.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "storage", body: `{"meetingLink":null}`, svcErr: appointments.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.svcErr}, logger.NewNop())
			id := uuid.New()

			req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/appointments/"+id.String()+"/meeting-link", strings.NewReader(tt.body))
			req = mux.SetURLVars(req, map[string]string{"appointmentId": id.String()})
			req = req.WithContext(middleware.WithIdentity(req.Context(), domain.Identity{UserID: uuid.New(), Role: domain.RoleAdmin}))
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
