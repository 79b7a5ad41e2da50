package reschedule_appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	rescheduleBooking "github.com/m04kA/coaching-scheduler/internal/usecase/reschedule_booking"
	"github.com/m04kA/coaching-scheduler/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidSlot = errors.New("invalid slot")
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	Date string `json:"date"` // "2026-06-10"
	Slot string `json:"slot"` // "10:30 AM"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Date        string    `json:"date"`
	Slot        string    `json:"slot"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Status      string    `json:"status"`
	ServiceName string    `json:"serviceName"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleRequest) ToUseCaseRequest(caller domain.Identity, appointmentID uuid.UUID) (*rescheduleBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	slot, err := types.ParseSlotLabel(r.Slot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidSlot, err)
	}

	return &rescheduleBooking.Request{
		Caller:        caller,
		AppointmentID: appointmentID,
		Date:          date,
		Slot:          slot,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		Date:        resp.Date.Format(domain.DateFormat),
		Slot:        resp.Slot.String(),
		StartTime:   resp.StartTime.Format(time.RFC3339),
		EndTime:     resp.EndTime.Format(time.RFC3339),
		Status:      resp.Status,
		ServiceName: resp.ServiceName,
	}
}
