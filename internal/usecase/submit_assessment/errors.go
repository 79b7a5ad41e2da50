package submit_assessment

import (
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

var (
	// ErrUnknownTest возвращается для неизвестного типа теста
	ErrUnknownTest = fmt.Errorf("%w: submit_assessment: unknown test", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: submit_assessment: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: submit_assessment: internal error", domain.ErrStorage)
)
