package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	createBooking "github.com/m04kA/coaching-scheduler/internal/usecase/create_booking"
	"github.com/m04kA/coaching-scheduler/pkg/types"
)

var (
	errInvalidServiceID = errors.New("invalid service type id")
	errInvalidDate      = errors.New("invalid date")
	errInvalidSlot      = errors.New("invalid slot")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceTypeID string  `json:"serviceTypeId"`
	Date          string  `json:"date"` // "2026-06-10"
	Slot          string  `json:"slot"` // "10:30 AM"
	Notes         *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	ServiceTypeID uuid.UUID `json:"serviceTypeId"`
	Date          string    `json:"date"`
	Slot          string    `json:"slot"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	Status        string    `json:"status"`
	ServiceName   string    `json:"serviceName"`
	ClientName    *string   `json:"clientName,omitempty"`
	ClientEmail   *string   `json:"clientEmail,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     string    `json:"createdAt"`
	UpdatedAt     string    `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и слота)
func (r *CreateBookingRequest) ToUseCaseRequest(userID uuid.UUID) (*createBooking.Request, error) {
	serviceTypeID, err := uuid.Parse(r.ServiceTypeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidServiceID, err)
	}

	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	slot, err := types.ParseSlotLabel(r.Slot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidSlot, err)
	}

	return &createBooking.Request{
		UserID:        userID,
		ServiceTypeID: serviceTypeID,
		Date:          date,
		Slot:          slot,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		ServiceTypeID: resp.ServiceTypeID,
		Date:          resp.Date.Format(domain.DateFormat),
		Slot:          resp.Slot.String(),
		StartTime:     resp.StartTime.Format(time.RFC3339),
		EndTime:       resp.EndTime.Format(time.RFC3339),
		Status:        resp.Status,
		ServiceName:   resp.ServiceName,
		ClientName:    resp.ClientName,
		ClientEmail:   resp.ClientEmail,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
