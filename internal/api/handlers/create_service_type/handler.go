package create_service_type

import (
	"errors"
	"net/http"

	"github.com/m04kA/coaching-scheduler/internal/api/handlers"
	"github.com/m04kA/coaching-scheduler/internal/api/middleware"
	"github.com/m04kA/coaching-scheduler/internal/service/catalog"
	"github.com/m04kA/coaching-scheduler/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "доступ запрещен"
	msgDuplicateName      = "услуга с таким названием уже существует"
	msgInvalidData        = "некорректные данные услуги"
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

// Handle POST /api/v1/admin/service-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/service-types - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	caller := middleware.GetIdentity(r.Context())

	result, err := h.service.Create(r.Context(), caller, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, catalog.ErrDuplicateName):
			h.logger.Warn("POST /admin/service-types - Duplicate name: %q", req.Name)
			handlers.RespondConflict(w, msgDuplicateName)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/service-types - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /admin/service-types - Failed to create service type: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/service-types - Service type created: service_type_id=%s, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
