package toggle_block

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	blockRepo "github.com/m04kA/coaching-scheduler/internal/infra/storage/block"
	"github.com/m04kA/coaching-scheduler/internal/schedule"
)

// UseCase use case для блокировки и разблокировки слота администратором
type UseCase struct {
	blockRepo BlockRepository
	txManager TransactionManager
	calendar  *schedule.Calendar
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	blockRepo BlockRepository,
	txManager TransactionManager,
	calendar *schedule.Calendar,
	logger Logger,
) *UseCase {
	return &UseCase{
		blockRepo: blockRepo,
		txManager: txManager,
		calendar:  calendar,
		logger:    logger,
	}
}

// Execute выполняет use case переключения блокировки
// Если блокировка на это время есть, она удаляется, иначе создается.
// Существующие записи на этот слот не затрагиваются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ToggleBlock: caller=%s, date=%s, slot=%s",
		req.Caller.UserID, req.Date.Format(domain.DateFormat), req.Slot)

	// 1. Валидация входных данных и прав
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ToggleBlock: validation failed: %v", err)
		return nil, err
	}

	// 2. Абсолютное время слота
	start, err := uc.calendar.ToAbsolute(req.Date, req.Slot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	end := start.Add(domain.SlotDurationMinutes * time.Minute)

	var blocked bool

	// 3. Читаем и переключаем блокировку в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		_, err := uc.blockRepo.GetByStart(txCtx, start)
		switch {
		case err == nil:
			if _, err := uc.blockRepo.DeleteByStart(txCtx, start); err != nil {
				uc.logger.Error("ToggleBlock: failed to delete block at %s: %v", start.Format(time.RFC3339), err)
				return fmt.Errorf("%w: failed to delete block: %v", ErrInternal, err)
			}
			blocked = false
			return nil

		case errors.Is(err, blockRepo.ErrBlockNotFound):
			// Вставка идемпотентна: параллельная блокировка того же слота не ошибка
			if _, err := uc.blockRepo.Create(txCtx, start, end); err != nil {
				uc.logger.Error("ToggleBlock: failed to create block at %s: %v", start.Format(time.RFC3339), err)
				return fmt.Errorf("%w: failed to create block: %v", ErrInternal, err)
			}
			blocked = true
			return nil

		default:
			uc.logger.Error("ToggleBlock: failed to get block at %s: %v", start.Format(time.RFC3339), err)
			return fmt.Errorf("%w: failed to get block: %v", ErrInternal, err)
		}
	})

	if err != nil {
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("ToggleBlock: slot %s on %s blocked=%t", req.Slot, req.Date.Format(domain.DateFormat), blocked)

	return &Response{
		Date:      uc.calendar.Date(req.Date),
		Slot:      req.Slot,
		StartTime: start,
		Blocked:   blocked,
	}, nil
}
