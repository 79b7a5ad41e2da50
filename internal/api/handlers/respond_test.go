package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

func TestStatusForClass(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: fmt.Errorf("%w: bad label", domain.ErrValidation), want: http.StatusBadRequest},
		{name: "precondition", err: fmt.Errorf("%w: too late", domain.ErrPrecondition), want: http.StatusUnprocessableEntity},
		{name: "conflict", err: fmt.Errorf("%w: taken", domain.ErrSlotConflict), want: http.StatusConflict},
		{name: "storage", err: fmt.Errorf("%w: down", domain.ErrStorage), want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForClass(tt.err))
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Dana"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "Dana", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nickname":"D"}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestPathUUID(t *testing.T) {
	id := uuid.New()

	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": id.String()})
	got, err := PathUUID(r, "id")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
	_, err = PathUUID(r, "id")
	assert.Error(t, err)

	_, err = PathUUID(httptest.NewRequest(http.MethodGet, "/", nil), "id")
	assert.Error(t, err)
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "слот занят")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"слот занят"}`, rec.Body.String())
}
