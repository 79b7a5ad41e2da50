package schedule

import (
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

var (
	// ErrNotOnGrid возвращается, когда слот не входит в сетку рабочего дня
	ErrNotOnGrid = fmt.Errorf("%w: slot is outside business hours", domain.ErrValidation)

	// ErrSlotUnavailable возвращается, когда слот заблокирован или занят
	ErrSlotUnavailable = fmt.Errorf("%w: slot is unavailable", domain.ErrPrecondition)

	// ErrInsideLeadTime возвращается, когда слот начинается раньше, чем через MinLeadTime
	ErrInsideLeadTime = fmt.Errorf("%w: slot starts within the minimum lead time", domain.ErrPrecondition)
)
