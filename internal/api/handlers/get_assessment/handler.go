package get_assessment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/coaching-scheduler/internal/api/handlers"
	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/internal/questionbank"
)

const (
	msgTestNotFound = "тест не найден"
)

type Handler struct {
	bank   QuestionBank
	logger Logger
}

func NewHandler(bank QuestionBank, logger Logger) *Handler {
	return &Handler{
		bank:   bank,
		logger: logger,
	}
}

// Handle GET /api/v1/assessments/{testType}
// Правильные ответы в ответ не попадают
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	testType := domain.TestType(mux.Vars(r)["testType"])
	if !testType.Valid() {
		h.logger.Warn("GET /assessments/{testType} - Unknown test type: %q", testType)
		handlers.RespondNotFound(w, msgTestNotFound)
		return
	}

	test, err := h.bank.Get(testType)
	if err != nil {
		if errors.Is(err, questionbank.ErrTestNotFound) {
			h.logger.Warn("GET /assessments/{testType} - Test not loaded: %q", testType)
			handlers.RespondNotFound(w, msgTestNotFound)
			return
		}
		h.logger.Error("GET /assessments/{testType} - Failed to get test: type=%s, error=%v", testType, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, test)
}
