package contact

import (
	"errors"
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

var (
	// ErrMessageNotFound возвращается, когда сообщение не найдено
	ErrMessageNotFound = errors.New("contact.repository: message not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = fmt.Errorf("%w: contact.repository: failed to build query", domain.ErrStorage)

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = fmt.Errorf("%w: contact.repository: failed to execute query", domain.ErrStorage)

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = fmt.Errorf("%w: contact.repository: failed to scan row", domain.ErrStorage)
)
