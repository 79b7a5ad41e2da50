package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/coaching-scheduler/internal/api/handlers"
	"github.com/m04kA/coaching-scheduler/internal/api/middleware"
	createBooking "github.com/m04kA/coaching-scheduler/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidSlot        = "некорректный формат слота, ожидается H:MM AM|PM"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidTimeSlot    = "слот не входит в рабочие часы этого дня"
	msgSlotNotAvailable   = "выбранный слот недоступен"
	msgTooLateToBook      = "записаться можно не позднее чем за 24 часа до начала"
	msgSlotConflict       = "слот только что заняли, выберите другой"
	msgInvalidInput       = "некорректные данные записи"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и слота)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		switch {
		case errors.Is(err, errInvalidServiceID):
			handlers.RespondBadRequest(w, msgInvalidServiceID)
		case errors.Is(err, errInvalidSlot):
			handlers.RespondBadRequest(w, msgInvalidSlot)
		default:
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: user_id=%s, service_id=%s", userID, req.ServiceTypeID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: user_id=%s, date=%s, slot=%s", userID, req.Date, req.Slot)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: user_id=%s, date=%s, slot=%s", userID, req.Date, req.Slot)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /appointments - Too late to book: user_id=%s, date=%s, slot=%s", userID, req.Date, req.Slot)
			handlers.RespondUnprocessable(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: user_id=%s, date=%s, slot=%s", userID, req.Date, req.Slot)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%s, user_id=%s",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
