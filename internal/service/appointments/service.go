package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	appointmentRepo "github.com/m04kA/coaching-scheduler/internal/infra/storage/appointment"
	"github.com/m04kA/coaching-scheduler/internal/schedule"
	"github.com/m04kA/coaching-scheduler/internal/service/appointments/models"
)

var validate = validator.New()

// Service сервис для работы с записями на консультации
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	calendar        *schedule.Calendar
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	calendar *schedule.Calendar,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		calendar:        calendar,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Клиент видит только свои записи, администратор - любые
func (s *Service) GetByID(ctx context.Context, caller domain.Identity, id uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s for user=%s", id, caller.UserID)

	appt, err := s.getAppointment(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !caller.CanAccess(appt.UserID) {
		s.logger.Warn("GetByID: access denied for user=%s to appointment id=%s", caller.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainAppointment(appt, s.calendar), nil
}

// GetUserAppointments получает историю записей клиента
// Опционально фильтрует по статусу
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for user=%s, status=%v", req.UserID, req.Status)

	if !req.Caller.CanAccess(req.UserID) {
		s.logger.Warn("GetUserAppointments: access denied for user=%s to user=%s", req.Caller.UserID, req.UserID)
		return nil, ErrAccessDenied
	}

	status, err := parseStatus(req.Status)
	if err != nil {
		s.logger.Warn("GetUserAppointments: invalid status=%v for user=%s", req.Status, req.UserID)
		return nil, err
	}

	userID := req.UserID
	appts, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{UserID: &userID, Status: status})
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserAppointments: successfully fetched %d appointments for user=%s", len(appts), req.UserID)
	return models.FromDomainAppointmentList(appts, s.calendar), nil
}

// ListAppointments получает записи всех клиентов за период
// Доступно только администратору
func (s *Service) ListAppointments(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListAppointments: fetching appointments, from=%v, to=%v, status=%v", req.FromDate, req.ToDate, req.Status)

	if !req.Caller.IsAdmin() {
		s.logger.Warn("ListAppointments: access denied for user=%s", req.Caller.UserID)
		return nil, ErrAccessDenied
	}

	status, err := parseStatus(req.Status)
	if err != nil {
		s.logger.Warn("ListAppointments: invalid status=%v", req.Status)
		return nil, err
	}

	filter := domain.AppointmentsFilter{Status: status}

	// Границы периода считаются по календарю практики, конечная дата включается
	if req.FromDate != nil {
		from, _ := s.calendar.DayBounds(*req.FromDate)
		filter.From = &from
	}
	if req.ToDate != nil {
		_, to := s.calendar.DayBounds(*req.ToDate)
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		s.logger.Warn("ListAppointments: empty period from=%v to=%v", req.FromDate, req.ToDate)
		return nil, fmt.Errorf("%w: fromDate must not be after toDate", ErrInvalidInput)
	}

	appts, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListAppointments: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAppointments: successfully fetched %d appointments", len(appts))
	return models.FromDomainAppointmentList(appts, s.calendar), nil
}

// ListClients возвращает ID всех клиентов, у которых была хотя бы одна запись
// Доступно только администратору
func (s *Service) ListClients(ctx context.Context, caller domain.Identity) (*models.ClientListResponse, error) {
	s.logger.Info("ListClients: fetching clients for user=%s", caller.UserID)

	if !caller.IsAdmin() {
		s.logger.Warn("ListClients: access denied for user=%s", caller.UserID)
		return nil, ErrAccessDenied
	}

	ids, err := s.appointmentRepo.GetClientIDs(ctx)
	if err != nil {
		s.logger.Error("ListClients: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListClients - repository error: %v", ErrInternal, err)
	}

	if ids == nil {
		ids = []uuid.UUID{}
	}

	s.logger.Info("ListClients: successfully fetched %d clients", len(ids))
	return &models.ClientListResponse{UserIDs: ids}, nil
}

// Cancel отменяет запись
// Клиент может отменить свою запись не позднее чем за 24 часа до начала
// Администратор может отменить любую запись в любое время
func (s *Service) Cancel(ctx context.Context, caller domain.Identity, id uuid.UUID) error {
	s.logger.Info("Cancel: cancelling appointment id=%s by user=%s", id, caller.UserID)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Получаем запись (с блокировкой строки в транзакции)
		appt, err := s.getAppointment(ctx, "Cancel", id)
		if err != nil {
			return err
		}

		// 2. Проверяем права доступа
		if !caller.CanAccess(appt.UserID) {
			s.logger.Warn("Cancel: access denied for user=%s to appointment id=%s", caller.UserID, id)
			return ErrAccessDenied
		}

		// 3. Отменить можно только запланированную запись
		if !appt.IsScheduled() {
			s.logger.Warn("Cancel: appointment id=%s cannot be cancelled, status=%s", id, appt.Status)
			return ErrNotScheduled
		}

		// 4. Клиент ограничен сроком уведомления
		if !caller.IsAdmin() && !appt.CanBeChangedBy(s.timeProvider.Now()) {
			s.logger.Warn("Cancel: too late to cancel appointment id=%s starting at %s", id, appt.StartTime)
			return ErrTooLateToCancel
		}

		// 5. Отменяем
		if err := s.appointmentRepo.Cancel(ctx, id); err != nil {
			return s.mapWriteError("Cancel", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%s", id)
	return nil
}

// Complete отмечает запись как проведенную и сохраняет заметки по сессии
// Доступно только администратору
func (s *Service) Complete(ctx context.Context, caller domain.Identity, id uuid.UUID, req *models.CompleteRequest) error {
	s.logger.Info("Complete: completing appointment id=%s by user=%s", id, caller.UserID)

	if !caller.IsAdmin() {
		s.logger.Warn("Complete: access denied for user=%s", caller.UserID)
		return ErrAccessDenied
	}

	if err := validate.Struct(req); err != nil {
		s.logger.Warn("Complete: invalid request for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		appt, err := s.getAppointment(ctx, "Complete", id)
		if err != nil {
			return err
		}

		if !appt.IsScheduled() {
			s.logger.Warn("Complete: appointment id=%s cannot be completed, status=%s", id, appt.Status)
			return ErrNotScheduled
		}

		if err := s.appointmentRepo.Complete(ctx, id, req.SessionNotes); err != nil {
			return s.mapWriteError("Complete", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Complete: successfully completed appointment id=%s", id)
	return nil
}

// SetMeetingLink устанавливает или удаляет ссылку на видеовстречу
// Доступно только администратору
func (s *Service) SetMeetingLink(ctx context.Context, caller domain.Identity, id uuid.UUID, req *models.MeetingLinkRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("SetMeetingLink: updating appointment id=%s by user=%s", id, caller.UserID)

	if !caller.IsAdmin() {
		s.logger.Warn("SetMeetingLink: access denied for user=%s", caller.UserID)
		return nil, ErrAccessDenied
	}

	// Пустая строка равносильна удалению ссылки
	if req.MeetingLink != nil && *req.MeetingLink == "" {
		req.MeetingLink = nil
	}

	if err := validate.Struct(req); err != nil {
		s.logger.Warn("SetMeetingLink: invalid meeting link for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	link := req.MeetingLink

	if err := s.appointmentRepo.SetMeetingLink(ctx, id, link); err != nil {
		return nil, s.mapWriteError("SetMeetingLink", id, err)
	}

	appt, err := s.getAppointment(ctx, "SetMeetingLink", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("SetMeetingLink: successfully updated appointment id=%s", id)
	return models.FromDomainAppointment(appt, s.calendar), nil
}

// getAppointment получает запись и приводит ошибки репозитория к ошибкам сервиса
func (s *Service) getAppointment(ctx context.Context, op string, id uuid.UUID) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%s not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appt, nil
}

func (s *Service) mapWriteError(op string, id uuid.UUID, err error) error {
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		s.logger.Warn("%s: appointment id=%s not found during update", op, id)
		return ErrAppointmentNotFound
	}
	s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func parseStatus(raw *string) (*domain.AppointmentStatus, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	status, err := models.ToDomainStatus(*raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return &status, nil
}
