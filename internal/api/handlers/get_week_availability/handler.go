package get_week_availability

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/api/handlers"
	"github.com/m04kA/coaching-scheduler/internal/domain"
	getWeekAvailability "github.com/m04kA/coaching-scheduler/internal/usecase/get_week_availability"
)

const (
	msgMissingDate      = "параметр date обязателен"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidExcludeID = "некорректный ID переносимой записи"
)

type Handler struct {
	useCase GetWeekAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD[&excludeAppointmentId=uuid]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getWeekAvailability.Request{Date: date}

	if raw := query.Get("excludeAppointmentId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid excludeAppointmentId: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		req.ExcludeAppointmentID = &id
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		status := handlers.StatusForClass(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("GET /availability - Failed to get availability: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Warn("GET /availability - Rejected: date=%s, error=%v", dateStr, err)
		handlers.RespondError(w, status, msgInvalidDate)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
