package catalog

import (
	"errors"
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

var (
	// ErrServiceTypeNotFound возвращается, когда услуга не найдена
	// Неактивные услуги для клиентов тоже считаются ненайденными
	ErrServiceTypeNotFound = errors.New("service type not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrDuplicateName возвращается, когда услуга с таким названием уже существует
	ErrDuplicateName = fmt.Errorf("%w: service type name already exists", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: catalog service: internal error", domain.ErrStorage)
)
