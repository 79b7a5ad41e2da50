package toggle_block

import (
	"errors"
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

var (
	// ErrAccessDenied возвращается, когда вызывающий не администратор
	ErrAccessDenied = errors.New("toggle_block: access denied")

	// ErrInvalidTimeSlot возвращается, когда слот не входит в сетку рабочего дня
	ErrInvalidTimeSlot = fmt.Errorf("%w: toggle_block: invalid time slot", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: toggle_block: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: toggle_block: internal error", domain.ErrStorage)
)
