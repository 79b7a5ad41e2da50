package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/coaching-scheduler/internal/api/handlers"
	"github.com/m04kA/coaching-scheduler/internal/api/middleware"
	"github.com/m04kA/coaching-scheduler/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "доступ запрещен"
	msgNotScheduled         = "запись уже отменена или проведена"
	msgTooLateToCancel      = "отменить запись можно не позднее чем за 24 часа до начала"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathUUID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	caller := middleware.GetIdentity(r.Context())

	err = h.service.Cancel(r.Context(), caller, appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Access denied: appointment_id=%s, user_id=%s",
				appointmentID, caller.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrNotScheduled):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Not scheduled: appointment_id=%s", appointmentID)
			handlers.RespondConflict(w, msgNotScheduled)

		case errors.Is(err, appointments.ErrTooLateToCancel):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Too late: appointment_id=%s", appointmentID)
			handlers.RespondUnprocessable(w, msgTooLateToCancel)

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed to cancel appointment: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment cancelled successfully: appointment_id=%s, user_id=%s",
		appointmentID, caller.UserID)
	handlers.RespondNoContent(w)
}
