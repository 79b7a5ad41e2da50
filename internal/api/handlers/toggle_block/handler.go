package toggle_block

import (
	"errors"
	"net/http"

	"github.com/m04kA/coaching-scheduler/internal/api/handlers"
	"github.com/m04kA/coaching-scheduler/internal/api/middleware"
	toggleBlock "github.com/m04kA/coaching-scheduler/internal/usecase/toggle_block"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidSlot        = "некорректный формат слота, ожидается H:MM AM|PM"
	msgInvalidTimeSlot    = "слот не входит в рабочие часы этого дня"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase ToggleBlockUseCase
	logger  Logger
}

func NewHandler(useCase ToggleBlockUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/blocks/toggle
// Повторный вызов для того же слота снимает блокировку
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ToggleBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocks/toggle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	caller := middleware.GetIdentity(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(caller)
	if err != nil {
		h.logger.Warn("POST /admin/blocks/toggle - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidSlot) {
			handlers.RespondBadRequest(w, msgInvalidSlot)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, toggleBlock.ErrAccessDenied):
			h.logger.Warn("POST /admin/blocks/toggle - Access denied: user_id=%s", caller.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, toggleBlock.ErrInvalidTimeSlot), errors.Is(err, toggleBlock.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocks/toggle - Invalid slot: date=%s, slot=%s", req.Date, req.Slot)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		default:
			h.logger.Error("POST /admin/blocks/toggle - Failed to toggle block: date=%s, slot=%s, error=%v",
				req.Date, req.Slot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocks/toggle - Slot toggled: date=%s, slot=%s, blocked=%t", req.Date, req.Slot, result.Blocked)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
