package get_score

import (
	"errors"
	"net/http"

	"github.com/m04kA/coaching-scheduler/internal/api/handlers"
	"github.com/m04kA/coaching-scheduler/internal/api/middleware"
	"github.com/m04kA/coaching-scheduler/internal/service/scores"
)

const (
	msgInvalidScoreID = "некорректный ID результата"
	msgNotFound       = "результат не найден"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service ScoreService
	logger  Logger
}

func NewHandler(service ScoreService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/scores/{scoreId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scoreID, err := handlers.PathUUID(r, "scoreId")
	if err != nil {
		h.logger.Warn("GET /scores/{id} - Invalid score ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScoreID)
		return
	}

	caller := middleware.GetIdentity(r.Context())

	result, err := h.service.GetByID(r.Context(), caller, scoreID)
	if err != nil {
		switch {
		case errors.Is(err, scores.ErrScoreNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, scores.ErrAccessDenied):
			h.logger.Warn("GET /scores/{id} - Access denied: score_id=%s, caller=%s", scoreID, caller.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /scores/{id} - Failed to get score: score_id=%s, error=%v", scoreID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
