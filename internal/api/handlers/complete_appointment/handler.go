package complete_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/coaching-scheduler/internal/api/handlers"
	"github.com/m04kA/coaching-scheduler/internal/api/middleware"
	"github.com/m04kA/coaching-scheduler/internal/service/appointments"
	"github.com/m04kA/coaching-scheduler/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "доступ запрещен"
	msgNotScheduled         = "запись уже отменена или проведена"
	msgInvalidInput         = "заметки по сессии слишком длинные"
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

// Handle PATCH /api/v1/admin/appointments/{appointmentId}/complete
// Тело запроса опционально: {"sessionNotes": "..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathUUID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PATCH /admin/appointments/{id}/complete - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req models.CompleteRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("PATCH /admin/appointments/{id}/complete - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	caller := middleware.GetIdentity(r.Context())

	err = h.service.Complete(r.Context(), caller, appointmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /admin/appointments/{id}/complete - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrNotScheduled):
			h.logger.Warn("PATCH /admin/appointments/{id}/complete - Not scheduled: appointment_id=%s", appointmentID)
			handlers.RespondConflict(w, msgNotScheduled)

		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /admin/appointments/{id}/complete - Failed to complete appointment: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/appointments/{id}/complete - Appointment completed: appointment_id=%s", appointmentID)
	handlers.RespondNoContent(w)
}
