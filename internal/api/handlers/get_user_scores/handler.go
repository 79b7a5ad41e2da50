package get_user_scores

import (
	"errors"
	"net/http"

	"github.com/m04kA/coaching-scheduler/internal/api/handlers"
	"github.com/m04kA/coaching-scheduler/internal/api/middleware"
	"github.com/m04kA/coaching-scheduler/internal/service/scores"
	"github.com/m04kA/coaching-scheduler/internal/service/scores/models"
)

const (
	msgInvalidUserID   = "некорректный ID пользователя"
	msgInvalidTestType = "неизвестный тип теста"
	msgForbidden       = "доступ запрещен"
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

// Handle GET /api/v1/users/{userId}/scores
// Query params: testType (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.PathUUID(r, "userId")
	if err != nil {
		h.logger.Warn("GET /users/{id}/scores - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	req := &models.GetScoresRequest{
		Caller: middleware.GetIdentity(r.Context()),
		UserID: userID,
	}
	if testType := r.URL.Query().Get("testType"); testType != "" {
		req.TestType = &testType
	}

	result, err := h.service.GetScoresForUser(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, scores.ErrAccessDenied):
			h.logger.Warn("GET /users/{id}/scores - Access denied: user_id=%s, caller=%s", userID, req.Caller.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, scores.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidTestType)

		default:
			h.logger.Error("GET /users/{id}/scores - Failed to get scores: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
