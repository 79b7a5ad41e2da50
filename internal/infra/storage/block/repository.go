package block

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/pkg/dbmetrics"
	"github.com/m04kA/coaching-scheduler/pkg/psqlbuilder"
)

const table = "availability_blocks"

// Repository репозиторий блокировок слотов, созданных администратором
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListBetween получает блокировки, начало которых попадает в [from, to)
func (r *Repository) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.AvailabilityBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "start_time", "end_time", "created_at").
		From(table).
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.AvailabilityBlock, 0)
	for rows.Next() {
		var b domain.AvailabilityBlock
		var createdAt sql.NullTime
		if err := rows.Scan(&b.ID, &b.StartTime, &b.EndTime, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListBetween - scan row: %v", ErrScanRow, err)
		}
		b.CreatedAt = createdAt.Time
		blocks = append(blocks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBetween - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// GetByStart получает блокировку по времени начала
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByStart(ctx context.Context, start time.Time) (*domain.AvailabilityBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "start_time", "end_time", "created_at").
		From(table).
		Where(squirrel.Eq{"start_time": start})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStart - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.AvailabilityBlock
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.StartTime, &b.EndTime, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStart - scan block: %v", ErrScanRow, err)
	}
	b.CreatedAt = createdAt.Time

	return &b, nil
}

// Create создает блокировку слота
// Вставка идемпотентна по start_time: повторный вызов ничего не меняет и возвращает false
func (r *Repository) Create(ctx context.Context, start, end time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("start_time", "end_time").
		Values(start, end).
		Suffix("ON CONFLICT (start_time) DO NOTHING").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Create - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// DeleteByStart удаляет блокировку по времени начала
// Удаление идемпотентно: отсутствие блокировки не является ошибкой, возвращается false
func (r *Repository) DeleteByStart(ctx context.Context, start time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"start_time": start}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: DeleteByStart - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: DeleteByStart - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: DeleteByStart - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}
