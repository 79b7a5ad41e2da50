package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	serviceTypeRepo "github.com/m04kA/coaching-scheduler/internal/infra/storage/servicetype"
	"github.com/m04kA/coaching-scheduler/internal/service/catalog/models"
)

var validate = validator.New()

// Service сервис каталога услуг практики
type Service struct {
	serviceTypeRepo ServiceTypeRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceTypeRepo ServiceTypeRepository, logger Logger) *Service {
	return &Service{
		serviceTypeRepo: serviceTypeRepo,
		logger:          logger,
	}
}

// List возвращает список услуг
// Клиенты и анонимные пользователи видят только активные услуги, администратор - все
func (s *Service) List(ctx context.Context, caller domain.Identity) (*models.ServiceTypeListResponse, error) {
	onlyActive := !caller.IsAdmin()
	s.logger.Info("List: fetching service types, onlyActive=%t", onlyActive)

	items, err := s.serviceTypeRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d service types", len(items))
	return models.FromDomainServiceTypeList(items), nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, caller domain.Identity, id uuid.UUID) (*models.ServiceTypeResponse, error) {
	s.logger.Info("GetByID: fetching service type id=%s", id)

	st, err := s.getServiceType(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !st.IsActive && !caller.IsAdmin() {
		s.logger.Warn("GetByID: service type id=%s is inactive", id)
		return nil, ErrServiceTypeNotFound
	}

	return models.FromDomainServiceType(st), nil
}

// Create создает новую услугу
// Доступно только администратору
func (s *Service) Create(ctx context.Context, caller domain.Identity, req *models.CreateServiceTypeRequest) (*models.ServiceTypeResponse, error) {
	s.logger.Info("Create: creating service type name=%q by user=%s", req.Name, caller.UserID)

	// 1. Проверяем права доступа
	if !caller.IsAdmin() {
		s.logger.Warn("Create: access denied for user=%s", caller.UserID)
		return nil, ErrAccessDenied
	}

	// 2. Валидируем входные данные
	if err := validate.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Создаем услугу
	created, err := s.serviceTypeRepo.Create(ctx, req.ToDomain())
	if err != nil {
		return nil, s.mapWriteError("Create", err)
	}

	s.logger.Info("Create: successfully created service type id=%s", created.ID)
	return models.FromDomainServiceType(created), nil
}

// Update частично обновляет услугу
// Доступно только администратору
func (s *Service) Update(ctx context.Context, caller domain.Identity, id uuid.UUID, req *models.UpdateServiceTypeRequest) (*models.ServiceTypeResponse, error) {
	s.logger.Info("Update: updating service type id=%s by user=%s", id, caller.UserID)

	// 1. Проверяем права доступа
	if !caller.IsAdmin() {
		s.logger.Warn("Update: access denied for user=%s", caller.UserID)
		return nil, ErrAccessDenied
	}

	// 2. Валидируем входные данные
	if req.IsEmpty() {
		s.logger.Warn("Update: empty update for service type id=%s", id)
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if err := validate.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Получаем текущее состояние и накладываем изменения
	st, err := s.getServiceType(ctx, "Update", id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(st)

	// 4. Сохраняем
	updated, err := s.serviceTypeRepo.Update(ctx, st)
	if err != nil {
		return nil, s.mapWriteError("Update", err)
	}

	s.logger.Info("Update: successfully updated service type id=%s", id)
	return models.FromDomainServiceType(updated), nil
}

// SetActive включает или отключает услугу
// Отключенная услуга пропадает из публичного каталога, существующие записи сохраняются
func (s *Service) SetActive(ctx context.Context, caller domain.Identity, id uuid.UUID, active bool) error {
	s.logger.Info("SetActive: setting service type id=%s active=%t by user=%s", id, active, caller.UserID)

	if !caller.IsAdmin() {
		s.logger.Warn("SetActive: access denied for user=%s", caller.UserID)
		return ErrAccessDenied
	}

	if err := s.serviceTypeRepo.SetActive(ctx, id, active); err != nil {
		return s.mapWriteError("SetActive", err)
	}

	s.logger.Info("SetActive: successfully updated service type id=%s", id)
	return nil
}

func (s *Service) getServiceType(ctx context.Context, op string, id uuid.UUID) (*domain.ServiceType, error) {
	st, err := s.serviceTypeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceTypeRepo.ErrServiceTypeNotFound) {
			s.logger.Warn("%s: service type id=%s not found", op, id)
			return nil, ErrServiceTypeNotFound
		}
		s.logger.Error("%s: repository error for service type id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return st, nil
}

func (s *Service) mapWriteError(op string, err error) error {
	switch {
	case errors.Is(err, serviceTypeRepo.ErrServiceTypeNotFound):
		s.logger.Warn("%s: service type not found", op)
		return ErrServiceTypeNotFound
	case errors.Is(err, serviceTypeRepo.ErrDuplicateName):
		s.logger.Warn("%s: %v", op, err)
		return fmt.Errorf("%w: %v", ErrDuplicateName, err)
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
