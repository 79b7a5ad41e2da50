package list_contact_messages

import (
	"context"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/internal/service/contact/models"
)

type ContactService interface {
	List(ctx context.Context, caller domain.Identity, onlyUnread bool) (*models.MessageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
