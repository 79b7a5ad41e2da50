package submit_contact_message

import (
	"context"

	"github.com/m04kA/coaching-scheduler/internal/service/contact/models"
)

type ContactService interface {
	Submit(ctx context.Context, req *models.SubmitRequest) (*models.MessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
