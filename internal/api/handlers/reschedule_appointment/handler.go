package reschedule_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/coaching-scheduler/internal/api/handlers"
	"github.com/m04kA/coaching-scheduler/internal/api/middleware"
	rescheduleBooking "github.com/m04kA/coaching-scheduler/internal/usecase/reschedule_booking"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidSlot          = "некорректный формат слота, ожидается H:MM AM|PM"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "доступ запрещен"
	msgNotScheduled         = "запись уже отменена или проведена"
	msgTooLateToChange      = "перенести запись можно не позднее чем за 24 часа до начала"
	msgInvalidTimeSlot      = "слот не входит в рабочие часы этого дня"
	msgSlotNotAvailable     = "выбранный слот недоступен"
	msgTooLateToBook        = "новый слот должен начинаться не раньше чем через 24 часа"
	msgSlotConflict         = "слот только что заняли, выберите другой"
	msgInvalidInput         = "некорректные данные переноса"
)

type Handler struct {
	useCase RescheduleUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathUUID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	caller := middleware.GetIdentity(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(caller, appointmentID)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Failed to parse request: %v", err)
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
		case errors.Is(err, rescheduleBooking.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Access denied: user_id=%s, appointment_id=%s",
				caller.UserID, appointmentID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleBooking.ErrNotScheduled):
			handlers.RespondConflict(w, msgNotScheduled)

		case errors.Is(err, rescheduleBooking.ErrTooLateToChange):
			handlers.RespondUnprocessable(w, msgTooLateToChange)

		case errors.Is(err, rescheduleBooking.ErrSlotConflict):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Slot conflict: appointment_id=%s, date=%s, slot=%s",
				appointmentID, req.Date, req.Slot)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, rescheduleBooking.ErrSlotNotAvailable):
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, rescheduleBooking.ErrTooLateToBook):
			handlers.RespondUnprocessable(w, msgTooLateToBook)

		case errors.Is(err, rescheduleBooking.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /appointments/{id}/reschedule - Failed to reschedule: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/reschedule - Appointment rescheduled: appointment_id=%s, date=%s, slot=%s",
		appointmentID, req.Date, req.Slot)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
