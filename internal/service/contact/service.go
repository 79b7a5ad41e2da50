package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	contactRepo "github.com/m04kA/coaching-scheduler/internal/infra/storage/contact"
	"github.com/m04kA/coaching-scheduler/internal/service/contact/models"
)

var validate = validator.New()

// Service сервис формы обратной связи
type Service struct {
	messageRepo MessageRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса обратной связи
func NewService(messageRepo MessageRepository, logger Logger) *Service {
	return &Service{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// Submit сохраняет сообщение посетителя сайта
// Доступно без авторизации
func (s *Service) Submit(ctx context.Context, req *models.SubmitRequest) (*models.MessageResponse, error) {
	req.Normalize()

	if err := validate.Struct(req); err != nil {
		s.logger.Warn("Submit: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	msg, err := s.messageRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Submit: repository error: %v", err)
		return nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Submit: stored contact message id=%s", msg.ID)
	return models.FromDomainMessage(msg), nil
}

// List возвращает сообщения, непрочитанные первыми
// Доступно только администратору
func (s *Service) List(ctx context.Context, caller domain.Identity, onlyUnread bool) (*models.MessageListResponse, error) {
	s.logger.Info("List: fetching contact messages, onlyUnread=%t", onlyUnread)

	if !caller.IsAdmin() {
		s.logger.Warn("List: access denied for user=%s", caller.UserID)
		return nil, ErrAccessDenied
	}

	items, err := s.messageRepo.List(ctx, onlyUnread)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d messages", len(items))
	return models.FromDomainMessageList(items), nil
}

// MarkRead отмечает сообщение прочитанным
// Доступно только администратору
func (s *Service) MarkRead(ctx context.Context, caller domain.Identity, id uuid.UUID) error {
	s.logger.Info("MarkRead: marking message id=%s as read", id)

	if !caller.IsAdmin() {
		s.logger.Warn("MarkRead: access denied for user=%s", caller.UserID)
		return ErrAccessDenied
	}

	if err := s.messageRepo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, contactRepo.ErrMessageNotFound) {
			s.logger.Warn("MarkRead: message id=%s not found", id)
			return ErrMessageNotFound
		}
		s.logger.Error("MarkRead: repository error for message id=%s: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	return nil
}
