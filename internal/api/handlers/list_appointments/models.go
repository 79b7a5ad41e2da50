package list_appointments

import (
	"time"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(caller domain.Identity, fromStr, toStr, statusStr string) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{Caller: caller}

	if fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		req.FromDate = &from
	}

	if toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, err
		}
		req.ToDate = &to
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	return req, nil
}
