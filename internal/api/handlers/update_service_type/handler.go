package update_service_type

import (
	"errors"
	"net/http"

	"github.com/m04kA/coaching-scheduler/internal/api/handlers"
	"github.com/m04kA/coaching-scheduler/internal/api/middleware"
	"github.com/m04kA/coaching-scheduler/internal/service/catalog"
	"github.com/m04kA/coaching-scheduler/internal/service/catalog/models"
)

const (
	msgInvalidServiceTypeID = "некорректный ID услуги"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgNotFound             = "услуга не найдена"
	msgForbidden            = "доступ запрещен"
	msgDuplicateName        = "услуга с таким названием уже существует"
	msgInvalidData          = "некорректные данные услуги"
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

// Handle PATCH /api/v1/admin/service-types/{serviceTypeId}
// Обновляются только переданные поля
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceTypeID, err := handlers.PathUUID(r, "serviceTypeId")
	if err != nil {
		h.logger.Warn("PATCH /admin/service-types/{id} - Invalid service type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceTypeID)
		return
	}

	var req models.UpdateServiceTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/service-types/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	caller := middleware.GetIdentity(r.Context())

	result, err := h.service.Update(r.Context(), caller, serviceTypeID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceTypeNotFound):
			h.logger.Warn("PATCH /admin/service-types/{id} - Service type not found: service_type_id=%s", serviceTypeID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, catalog.ErrDuplicateName):
			handlers.RespondConflict(w, msgDuplicateName)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/service-types/{id} - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PATCH /admin/service-types/{id} - Failed to update service type: service_type_id=%s, error=%v",
				serviceTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/service-types/{id} - Service type updated: service_type_id=%s", serviceTypeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
