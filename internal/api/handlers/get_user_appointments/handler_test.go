package get_user_appointments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/coaching-scheduler/internal/api/middleware"
	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/internal/service/appointments"
	"github.com/m04kA/coaching-scheduler/internal/service/appointments/models"
	"github.com/m04kA/coaching-scheduler/pkg/logger"
	"github.com/m04kA/coaching-scheduler/pkg/ptr"
)

type fakeService struct {
	got *models.GetUserAppointmentsRequest
	err error
}

func (f *fakeService) GetUserAppointments(_ context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{{UserID: req.UserID}}}, nil
}

func TestHandler_Handle(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name         string
		query        string
		svcErr       error
		wantStatus   int
		wantFilterBy *string
	}{
		{name: "all", wantStatus: http.StatusOK},
		{name: "filtered", query: "?status=cancelled", wantStatus: http.StatusOK, wantFilterBy: ptr.Ptr("cancelled")},
		{name: "bad status", query: "?status=lost", svcErr: appointments.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "forbidden", svcErr: appointments.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "storage", svcErr: appointments.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.svcErr}
			h := NewHandler(svc, logger.NewNop())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+userID.String()+"/appointments"+tt.query, nil)
			req = mux.SetURLVars(req, map[string]string{"userId": userID.String()})
			req = req.WithContext(middleware.WithIdentity(req.Context(), domain.Identity{UserID: userID, Role: domain.RoleClient}))
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, svc.got)
			assert.Equal(t, userID, svc.got.UserID)
			if tt.svcErr == nil {
				assert.Equal(t, tt.wantFilterBy, svc.got.Status)
			}
		})
	}
}
