package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	appointmentRepo "github.com/m04kA/coaching-scheduler/internal/infra/storage/appointment"
	serviceTypeRepo "github.com/m04kA/coaching-scheduler/internal/infra/storage/servicetype"
	"github.com/m04kA/coaching-scheduler/internal/schedule"
	"github.com/m04kA/coaching-scheduler/pkg/pgerr"
)

// UseCase use case для создания записи на консультацию
type UseCase struct {
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	serviceTypeRepo ServiceTypeRepository
	profileClient   ProfileClient
	txManager       TransactionManager
	calendar        *schedule.Calendar
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blockRepo BlockRepository,
	serviceTypeRepo ServiceTypeRepository,
	profileClient ProfileClient,
	txManager TransactionManager,
	calendar *schedule.Calendar,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		serviceTypeRepo: serviceTypeRepo,
		profileClient:   profileClient,
		txManager:       txManager,
		calendar:        calendar,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка слота и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, service=%s, date=%s, slot=%s",
		req.UserID, req.ServiceTypeID, req.Date.Format(domain.DateFormat), req.Slot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.IncBooking(outcomeRejected)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу
	service, err := uc.serviceTypeRepo.GetByID(ctx, req.ServiceTypeID)
	if err != nil {
		if errors.Is(err, serviceTypeRepo.ErrServiceTypeNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceTypeID)
			uc.metrics.IncBooking(outcomeRejected)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceTypeID, err)
		uc.metrics.IncBooking(outcomeError)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateBooking: service id=%s is inactive", req.ServiceTypeID)
		uc.metrics.IncBooking(outcomeRejected)
		return nil, ErrServiceNotFound
	}

	// 4. Получаем контакты клиента, без сервиса профилей запись создается без них
	var clientName, clientEmail *string
	profile, err := uc.profileClient.GetProfileWithGracefulDegradation(ctx, req.UserID)
	if err != nil {
		uc.logger.Warn("CreateBooking: proceeding without profile for user=%s: %v", req.UserID, err)
	} else if profile != nil {
		clientName = profile.Name
		clientEmail = profile.Email
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем блокировки и активные записи дня с блокировкой (FOR UPDATE)
		dayStart, dayEnd := uc.calendar.DayBounds(req.Date)

		blocks, err := uc.blockRepo.ListBetween(txCtx, dayStart, dayEnd)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocks: %v", err)
			return fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
		}

		appointments, err := uc.appointmentRepo.List(txCtx, domain.AppointmentsFilter{
			From:     &dayStart,
			To:       &dayEnd,
			OnlySlot: true,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 5.2. Проверяем доступность слота по актуальному состоянию
		state := schedule.DayState{Blocks: blocks, Appointments: appointments}
		unavailable := uc.calendar.UnavailableSlots(req.Date, state, nil)
		if err := uc.calendar.CheckBookable(req.Date, req.Slot, unavailable, now); err != nil {
			uc.logger.Warn("CreateBooking: slot %s on %s is not bookable: %v",
				req.Slot, req.Date.Format(domain.DateFormat), err)
			return mapBookableError(err)
		}

		start, err := uc.calendar.ToAbsolute(req.Date, req.Slot)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
		}

		// 5.3. Создаем запись с денормализацией данных услуги и клиента
		appt := &domain.Appointment{
			UserID:        req.UserID,
			ServiceTypeID: service.ID,
			StartTime:     start,
			EndTime:       start.Add(service.DurationOrDefault()),
			Status:        domain.StatusScheduled,
			ServiceName:   service.Name,
			ClientName:    clientName,
			ClientEmail:   clientEmail,
			Notes:         req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s taken concurrently", req.Slot)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.fail(err)
	}

	uc.metrics.IncBooking(outcomeCreated)
	uc.logger.Info("CreateBooking: successfully created appointment id=%s", result.ID)

	// Конвертируем в response
	return &Response{
		ID:            result.ID,
		UserID:        result.UserID,
		ServiceTypeID: result.ServiceTypeID,
		Date:          uc.calendar.Date(req.Date),
		Slot:          req.Slot,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		Status:        string(result.Status),
		ServiceName:   result.ServiceName,
		ClientName:    result.ClientName,
		ClientEmail:   result.ClientEmail,
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// fail классифицирует ошибку транзакции и учитывает её в метриках
// Проигранная сериализуемая транзакция означает, что слот заняли параллельно
func (uc *UseCase) fail(err error) error {
	switch {
	case errors.Is(err, domain.ErrSlotConflict):
		uc.metrics.IncBooking(outcomeConflict)
		return err
	case pgerr.IsSerializationFailure(err):
		uc.logger.Warn("CreateBooking: serialization failure: %v", err)
		uc.metrics.IncBooking(outcomeConflict)
		return ErrSlotConflict
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrPrecondition):
		uc.metrics.IncBooking(outcomeRejected)
		return err
	case errors.Is(err, ErrInternal):
		uc.metrics.IncBooking(outcomeError)
		return err
	default:
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		uc.metrics.IncBooking(outcomeError)
		return fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}
}
