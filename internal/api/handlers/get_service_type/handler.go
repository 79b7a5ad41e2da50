package get_service_type

import (
	"errors"
	"net/http"

	"github.com/m04kA/coaching-scheduler/internal/api/handlers"
	"github.com/m04kA/coaching-scheduler/internal/api/middleware"
	"github.com/m04kA/coaching-scheduler/internal/service/catalog"
)

const (
	msgInvalidServiceTypeID = "некорректный ID услуги"
	msgNotFound             = "услуга не найдена"
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

// Handle GET /api/v1/service-types/{serviceTypeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceTypeID, err := handlers.PathUUID(r, "serviceTypeId")
	if err != nil {
		h.logger.Warn("GET /service-types/{id} - Invalid service type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceTypeID)
		return
	}

	caller := middleware.GetIdentity(r.Context())

	result, err := h.service.GetByID(r.Context(), caller, serviceTypeID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceTypeNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /service-types/{id} - Failed to get service type: service_type_id=%s, error=%v", serviceTypeID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
