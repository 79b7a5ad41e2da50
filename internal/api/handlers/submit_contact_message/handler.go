package submit_contact_message

import (
	"errors"
	"net/http"

	"github.com/m04kA/coaching-scheduler/internal/api/handlers"
	"github.com/m04kA/coaching-scheduler/internal/service/contact"
	"github.com/m04kA/coaching-scheduler/internal/service/contact/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "заполните имя, корректный email и сообщение (до 2000 символов)"
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

// Handle POST /api/v1/contact
// Публичный метод, авторизация не требуется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		if errors.Is(err, contact.ErrInvalidInput) {
			h.logger.Warn("POST /contact - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}
		h.logger.Error("POST /contact - Failed to save message: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /contact - Message received: message_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
