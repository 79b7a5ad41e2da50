package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

func captureIdentity(got *domain.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = GetIdentity(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		userID     string
		role       string
		wantStatus int
		want       domain.Identity
	}{
		{name: "client by default", userID: userID.String(), wantStatus: http.StatusOK, want: domain.Identity{UserID: userID, Role: domain.RoleClient}},
		{name: "admin", userID: userID.String(), role: "admin", wantStatus: http.StatusOK, want: domain.Identity{UserID: userID, Role: domain.RoleAdmin}},
		{name: "role is case insensitive", userID: userID.String(), role: "Admin", wantStatus: http.StatusOK, want: domain.Identity{UserID: userID, Role: domain.RoleAdmin}},
		{name: "missing", wantStatus: http.StatusUnauthorized},
		{name: "not a uuid", userID: "42", wantStatus: http.StatusUnauthorized},
		{name: "nil uuid", userID: uuid.Nil.String(), wantStatus: http.StatusUnauthorized},
		{name: "unknown role", userID: userID.String(), role: "coach", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.Identity
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.userID != "" {
				req.Header.Set(HeaderUserID, tt.userID)
			}
			if tt.role != "" {
				req.Header.Set(HeaderUserRole, tt.role)
			}
			rec := httptest.NewRecorder()

			Auth(captureIdentity(&got)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	var got domain.Identity
	rec := httptest.NewRecorder()
	OptionalAuth(captureIdentity(&got)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, got.IsAnonymous())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, "garbage")
	rec = httptest.NewRecorder()
	OptionalAuth(captureIdentity(&got)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly(t *testing.T) {
	var got domain.Identity
	chain := Auth(AdminOnly(captureIdentity(&got)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, uuid.NewString())
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req.Header.Set(HeaderUserRole, "admin")
	rec = httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, got.IsAdmin())
}

type observed struct {
	method string
	route  string
	status int
}

type fakeRecorder struct {
	calls []observed
}

func (f *fakeRecorder) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	f.calls = append(f.calls, observed{method: method, route: route, status: status})
}

func TestMetricsMiddleware(t *testing.T) {
	recorder := &fakeRecorder{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(recorder))
	r.HandleFunc("/appointments/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/appointments/"+uuid.NewString(), nil))

	require.Len(t, recorder.calls, 1)
	assert.Equal(t, observed{method: http.MethodGet, route: "/appointments/{id}", status: http.StatusNotFound}, recorder.calls[0])
}
