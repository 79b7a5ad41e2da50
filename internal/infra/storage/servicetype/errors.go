package servicetype

import (
	"errors"
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

var (
	// ErrServiceTypeNotFound возвращается, когда услуга не найдена
	ErrServiceTypeNotFound = errors.New("servicetype.repository: service type not found")

	// ErrDuplicateName возвращается при попытке создать вторую услугу с тем же названием
	ErrDuplicateName = fmt.Errorf("%w: servicetype.repository: service name already exists", domain.ErrValidation)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = fmt.Errorf("%w: servicetype.repository: failed to build query", domain.ErrStorage)

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = fmt.Errorf("%w: servicetype.repository: failed to execute query", domain.ErrStorage)

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = fmt.Errorf("%w: servicetype.repository: failed to scan row", domain.ErrStorage)
)
