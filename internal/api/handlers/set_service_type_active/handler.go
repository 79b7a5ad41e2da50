package set_service_type_active

import (
	"errors"
	"net/http"

	"github.com/m04kA/coaching-scheduler/internal/api/handlers"
	"github.com/m04kA/coaching-scheduler/internal/api/middleware"
	"github.com/m04kA/coaching-scheduler/internal/service/catalog"
)

const (
	msgInvalidServiceTypeID = "некорректный ID услуги"
	msgInvalidRequestBody   = "некорректное тело запроса, ожидается {\"isActive\": true|false}"
	msgNotFound             = "услуга не найдена"
	msgForbidden            = "доступ запрещен"
)

// SetActiveRequest HTTP request model
type SetActiveRequest struct {
	IsActive *bool `json:"isActive"`
}

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

// Handle PUT /api/v1/admin/service-types/{serviceTypeId}/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceTypeID, err := handlers.PathUUID(r, "serviceTypeId")
	if err != nil {
		h.logger.Warn("PUT /admin/service-types/{id}/active - Invalid service type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceTypeID)
		return
	}

	var req SetActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.IsActive == nil {
		h.logger.Warn("PUT /admin/service-types/{id}/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	caller := middleware.GetIdentity(r.Context())

	if err := h.service.SetActive(r.Context(), caller, serviceTypeID, *req.IsActive); err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceTypeNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /admin/service-types/{id}/active - Failed to update service type: service_type_id=%s, error=%v",
				serviceTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/service-types/{id}/active - Service type updated: service_type_id=%s, active=%t",
		serviceTypeID, *req.IsActive)
	handlers.RespondNoContent(w)
}
