package list_contact_messages

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/coaching-scheduler/internal/api/handlers"
	"github.com/m04kA/coaching-scheduler/internal/api/middleware"
	"github.com/m04kA/coaching-scheduler/internal/service/contact"
)

const (
	msgInvalidUnread = "параметр unread должен быть true или false"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service ContactService
	logger  Logger
}

func NewHandler(service ContactService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/contact-messages
// Query params: unread (опционально, по умолчанию false)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyUnread := false
	if raw := r.URL.Query().Get("unread"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /admin/contact-messages - Invalid unread param: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidUnread)
			return
		}
		onlyUnread = v
	}

	caller := middleware.GetIdentity(r.Context())

	result, err := h.service.List(r.Context(), caller, onlyUnread)
	if err != nil {
		if errors.Is(err, contact.ErrAccessDenied) {
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /admin/contact-messages - Failed to list messages: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
