package contact

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/pkg/dbmetrics"
	"github.com/m04kA/coaching-scheduler/pkg/psqlbuilder"
)

const table = "contact_messages"

// Repository репозиторий сообщений из формы обратной связи
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сообщений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет сообщение
func (r *Repository) Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("name", "email", "message").
		Values(msg.Name, msg.Email, msg.Message).
		Suffix("RETURNING id, is_read, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&msg.ID, &msg.IsRead, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	msg.CreatedAt = createdAt.Time

	return msg, nil
}

// List получает сообщения: сначала непрочитанные, внутри группы новые первыми
func (r *Repository) List(ctx context.Context, onlyUnread bool) ([]*domain.ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "name", "email", "message", "is_read", "created_at").
		From(table).
		OrderBy("is_read ASC", "created_at DESC")

	if onlyUnread {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_read": false})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	messages := make([]*domain.ContactMessage, 0)
	for rows.Next() {
		var m domain.ContactMessage
		var createdAt sql.NullTime
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.IsRead, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		m.CreatedAt = createdAt.Time
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return messages, nil
}

// MarkRead отмечает сообщение прочитанным
func (r *Repository) MarkRead(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("is_read", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkRead - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMessageNotFound
	}

	return nil
}
