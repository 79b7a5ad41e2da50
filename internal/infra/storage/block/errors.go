package block

import (
	"errors"
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

var (
	// ErrBlockNotFound возвращается, когда блокировка слота не найдена
	ErrBlockNotFound = errors.New("block.repository: block not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = fmt.Errorf("%w: block.repository: failed to build query", domain.ErrStorage)

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = fmt.Errorf("%w: block.repository: failed to execute query", domain.ErrStorage)

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = fmt.Errorf("%w: block.repository: failed to scan row", domain.ErrStorage)
)
