package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	appointmentRepo "github.com/m04kA/coaching-scheduler/internal/infra/storage/appointment"
	"github.com/m04kA/coaching-scheduler/internal/schedule"
	"github.com/m04kA/coaching-scheduler/pkg/pgerr"
)

// UseCase use case для переноса записи на другое время
type UseCase struct {
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	txManager       TransactionManager
	calendar        *schedule.Calendar
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blockRepo BlockRepository,
	txManager TransactionManager,
	calendar *schedule.Calendar,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		txManager:       txManager,
		calendar:        calendar,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case переноса записи
// Запись переносится на месте: ID и статус сохраняются, меняются только start/end.
// Владелец может перенести запись, пока до её текущего начала не меньше 24 часов,
// администратор в любое время. Новый слот проверяется без учета самой записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: appointment=%s, caller=%s, date=%s, slot=%s",
		req.AppointmentID, req.Caller.UserID, req.Date.Format(domain.DateFormat), req.Slot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Appointment

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем запись с блокировкой строки
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleBooking: appointment id=%s not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get appointment id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 3.2. Проверяем права и возможность изменения
		if !req.Caller.CanAccess(appt.UserID) {
			uc.logger.Warn("RescheduleBooking: access denied for user=%s to appointment id=%s",
				req.Caller.UserID, appt.ID)
			return ErrAccessDenied
		}
		if !appt.IsScheduled() {
			uc.logger.Warn("RescheduleBooking: appointment id=%s has status=%s", appt.ID, appt.Status)
			return ErrNotScheduled
		}
		if !req.Caller.IsAdmin() && !appt.CanBeChangedBy(now) {
			uc.logger.Warn("RescheduleBooking: appointment id=%s starts within the notice period", appt.ID)
			return ErrTooLateToChange
		}

		// 3.3. Проверяем новый слот по актуальному состоянию дня
		dayStart, dayEnd := uc.calendar.DayBounds(req.Date)

		blocks, err := uc.blockRepo.ListBetween(txCtx, dayStart, dayEnd)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get blocks: %v", err)
			return fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
		}

		appointments, err := uc.appointmentRepo.List(txCtx, domain.AppointmentsFilter{
			From:     &dayStart,
			To:       &dayEnd,
			OnlySlot: true,
		})
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		state := schedule.DayState{Blocks: blocks, Appointments: appointments}
		unavailable := uc.calendar.UnavailableSlots(req.Date, state, &appt.ID)
		if err := uc.calendar.CheckBookable(req.Date, req.Slot, unavailable, now); err != nil {
			uc.logger.Warn("RescheduleBooking: slot %s on %s is not bookable: %v",
				req.Slot, req.Date.Format(domain.DateFormat), err)
			return mapBookableError(err)
		}

		start, err := uc.calendar.ToAbsolute(req.Date, req.Slot)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
		}

		// Длительность записи сохраняется
		duration := appt.Duration()
		if duration <= 0 {
			duration = domain.DefaultServiceDurationMinutes * time.Minute
		}
		end := start.Add(duration)

		// 3.4. Переносим запись
		if err := uc.appointmentRepo.UpdateTimes(txCtx, appt.ID, start, end); err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("RescheduleBooking: slot %s taken concurrently", req.Slot)
				return ErrSlotConflict
			}
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to update appointment id=%s: %v", appt.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		appt.StartTime = start
		appt.EndTime = end
		result = appt
		return nil
	})

	if err != nil {
		if pgerr.IsSerializationFailure(err) {
			uc.logger.Warn("RescheduleBooking: serialization failure: %v", err)
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: appointment id=%s moved to %s", result.ID, result.StartTime.Format(time.RFC3339))

	return &Response{
		ID:          result.ID,
		UserID:      result.UserID,
		Date:        uc.calendar.Date(req.Date),
		Slot:        req.Slot,
		StartTime:   result.StartTime,
		EndTime:     result.EndTime,
		Status:      string(result.Status),
		ServiceName: result.ServiceName,
	}, nil
}
