package questionbank

import (
	"errors"
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

var (
	// ErrInvalidDefinition возвращается при некорректном описании теста
	ErrInvalidDefinition = fmt.Errorf("%w: invalid test definition", domain.ErrValidation)

	// ErrTestNotFound возвращается, когда тест с таким типом не найден
	ErrTestNotFound = errors.New("questionbank: test not found")
)
