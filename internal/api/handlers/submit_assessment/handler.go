package submit_assessment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/coaching-scheduler/internal/api/handlers"
	"github.com/m04kA/coaching-scheduler/internal/api/middleware"
	"github.com/m04kA/coaching-scheduler/internal/domain"
	submitAssessment "github.com/m04kA/coaching-scheduler/internal/usecase/submit_assessment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTestNotFound       = "тест не найден"
	msgInvalidAnswers     = "ответы не соответствуют вопросам теста"
)

type Handler struct {
	useCase SubmitAssessmentUseCase
	logger  Logger
}

func NewHandler(useCase SubmitAssessmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/assessments/{testType}/submissions
// Для анонимного пользователя результат считается, но не сохраняется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	testType := domain.TestType(mux.Vars(r)["testType"])

	var req SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /assessments/{testType}/submissions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	caller := middleware.GetIdentity(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(caller, testType))
	if err != nil {
		switch {
		case errors.Is(err, submitAssessment.ErrUnknownTest):
			h.logger.Warn("POST /assessments/{testType}/submissions - Unknown test: %q", testType)
			handlers.RespondNotFound(w, msgTestNotFound)

		case errors.Is(err, submitAssessment.ErrInvalidInput):
			h.logger.Warn("POST /assessments/{testType}/submissions - Invalid answers: type=%s, error=%v", testType, err)
			handlers.RespondBadRequest(w, msgInvalidAnswers)

		default:
			h.logger.Error("POST /assessments/{testType}/submissions - Failed to score: type=%s, error=%v", testType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.Persisted {
		status = http.StatusCreated
		h.logger.Info("POST /assessments/{testType}/submissions - Score saved: type=%s, score_id=%s, user_id=%s",
			testType, *result.ScoreID, caller.UserID)
	}
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
