package list_service_types

import (
	"net/http"

	"github.com/m04kA/coaching-scheduler/internal/api/handlers"
	"github.com/m04kA/coaching-scheduler/internal/api/middleware"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/service-types
// Клиенты и гости видят только активные услуги, администратор - все
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetIdentity(r.Context())

	result, err := h.service.List(r.Context(), caller)
	if err != nil {
		h.logger.Error("GET /service-types - Failed to list service types: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
