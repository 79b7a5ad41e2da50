package get_week_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/internal/schedule"
)

// UseCase use case для получения сетки слотов на неделю
type UseCase struct {
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	calendar        *schedule.Calendar
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blockRepo BlockRepository,
	calendar *schedule.Calendar,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		calendar:        calendar,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения сетки слотов недели
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetWeekAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetWeekAvailability: date=%s", req.Date.Format(domain.DateFormat))

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Границы недели в часовом поясе практики
	from, to := uc.calendar.WeekBounds(req.Date)

	// 4. Получаем блокировки недели
	blocks, err := uc.blockRepo.ListBetween(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetWeekAvailability: failed to get blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	// 5. Получаем активные записи недели
	appointments, err := uc.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		From:     &from,
		To:       &to,
		OnlySlot: true,
	})
	if err != nil {
		uc.logger.Error("GetWeekAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Строим сетку
	state := schedule.DayState{Blocks: blocks, Appointments: appointments}
	days := uc.calendar.WeekSlots(req.Date, state, req.ExcludeAppointmentID, now)

	return &Response{
		WeekStart: from,
		Days:      days,
	}, nil
}
