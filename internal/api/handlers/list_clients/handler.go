package list_clients

import (
	"errors"
	"net/http"

	"github.com/m04kA/coaching-scheduler/internal/api/handlers"
	"github.com/m04kA/coaching-scheduler/internal/api/middleware"
	"github.com/m04kA/coaching-scheduler/internal/service/appointments"
)

const msgForbidden = "доступ запрещен"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetIdentity(r.Context())

	result, err := h.service.ListClients(r.Context(), caller)
	if err != nil {
		if errors.Is(err, appointments.ErrAccessDenied) {
			h.logger.Warn("GET /admin/clients - Access denied: user_id=%s", caller.UserID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /admin/clients - Failed to list clients: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
