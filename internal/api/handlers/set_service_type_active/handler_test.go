package set_service_type_active

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
	"github.com/m04kA/coaching-scheduler/internal/service/catalog"
	"github.com/m04kA/coaching-scheduler/pkg/logger"
)

type fakeService struct {
	called bool
	active bool
	err    error
}

func (f *fakeService) SetActive(_ context.Context, _ domain.Identity, _ uuid.UUID, active bool) error {
	f.called = true
	f.active = active
	return f.err
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantCalled bool
		wantActive bool
	}{
		{name: "deactivate", body: `{"isActive":false}`, wantStatus: http.StatusNoContent, wantCalled: true},
		{name: "activate", body: `{"isActive":true}`, wantStatus: http.StatusNoContent, wantCalled: true, wantActive: true},
		{name: "missing flag", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "wrong type", body: `{"isActive":"yes"}`, wantStatus: http.StatusBadRequest},
		{name: "not found", body: `{"isActive":true}`, svcErr: catalog.ErrServiceTypeNotFound, wantStatus: http.StatusNotFound, wantCalled: true, wantActive: true},
		{name: "not admin", body: `{"isActive":true}`, svcErr: catalog.ErrAccessDenied, wantStatus: http.StatusForbidden, wantCalled: true, wantActive: true},
		{name: "storage", body: `{"isActive":true}`, svcErr: catalog.ErrInternal, wantStatus: http.StatusInternalServerError, wantCalled: true, wantActive: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.svcErr}
			h := NewHandler(svc, logger.NewNop())
			id := uuid.NewString()

			req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/service-types/"+id+"/active", strings.NewReader(tt.body))
			req = mux.SetURLVars(req, map[string]string{"serviceTypeId": id})
			req = req.WithContext(middleware.WithIdentity(req.Context(), domain.Identity{UserID: uuid.New(), Role: domain.RoleAdmin}))
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, svc.called)
			assert.Equal(t, tt.wantActive, svc.active)
		})
	}
}
