package assessment

import (
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

var (
	// ErrIncompleteAnswers возвращается, если хотя бы на один вопрос нет ответа
	ErrIncompleteAnswers = fmt.Errorf("%w: answer set is incomplete", domain.ErrValidation)

	// ErrInvalidAnswer возвращается для ответа вне допустимых значений или ключа, не относящегося к тесту
	ErrInvalidAnswer = fmt.Errorf("%w: invalid answer", domain.ErrValidation)

	// ErrUnsupportedTest возвращается для теста, для которого нет правил подсчета
	ErrUnsupportedTest = fmt.Errorf("%w: unsupported test type", domain.ErrValidation)

	// ErrInvalidTransition возвращается при недопустимом переходе в прохождении теста
	ErrInvalidTransition = fmt.Errorf("%w: invalid attempt transition", domain.ErrPrecondition)
)
