package mark_contact_message_read

import (
	"errors"
	"net/http"

	"github.com/m04kA/coaching-scheduler/internal/api/handlers"
	"github.com/m04kA/coaching-scheduler/internal/api/middleware"
	"github.com/m04kA/coaching-scheduler/internal/service/contact"
)

const (
	msgInvalidMessageID = "некорректный ID сообщения"
	msgNotFound         = "сообщение не найдено"
	msgForbidden        = "доступ запрещен"
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

// Handle PATCH /api/v1/admin/contact-messages/{messageId}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	messageID, err := handlers.PathUUID(r, "messageId")
	if err != nil {
		h.logger.Warn("PATCH /admin/contact-messages/{id}/read - Invalid message ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMessageID)
		return
	}

	caller := middleware.GetIdentity(r.Context())

	if err := h.service.MarkRead(r.Context(), caller, messageID); err != nil {
		switch {
		case errors.Is(err, contact.ErrMessageNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, contact.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PATCH /admin/contact-messages/{id}/read - Failed to mark message: message_id=%s, error=%v",
				messageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}
