package score

import (
	"errors"
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

var (
	// ErrScoreNotFound возвращается, когда результат теста не найден
	ErrScoreNotFound = errors.New("score.repository: score not found")

	// ErrEncode возвращается при ошибке сериализации breakdown/answers в JSONB
	ErrEncode = fmt.Errorf("%w: score.repository: failed to encode score", domain.ErrStorage)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = fmt.Errorf("%w: score.repository: failed to build query", domain.ErrStorage)

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = fmt.Errorf("%w: score.repository: failed to execute query", domain.ErrStorage)

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = fmt.Errorf("%w: score.repository: failed to scan row", domain.ErrStorage)
)
