package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/pkg/dbmetrics"
	"github.com/m04kA/coaching-scheduler/pkg/pgerr"
	"github.com/m04kA/coaching-scheduler/pkg/psqlbuilder"
)

const table = "appointments"

var columns = []string{
	"id",
	"user_id",
	"service_type_id",
	"start_time",
	"end_time",
	"status",
	"service_name",
	"client_name",
	"client_email",
	"notes",
	"session_notes",
	"meeting_link",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями на консультации
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// isSlotConflict: уникальный индекс по start_time активных записей или
// проигранная сериализуемая транзакция означают, что слот занял кто-то другой
func isSlotConflict(err error) bool {
	return pgerr.IsUniqueViolation(err) || pgerr.IsSerializationFailure(err)
}

// Create создает новую запись
// Если в контексте передана активная транзакция, использует её.
// Уникальный индекс appointments(start_time) WHERE status = 'scheduled' не даёт
// создать две активные записи на одно время: такая попытка возвращает ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"user_id",
			"service_type_id",
			"start_time",
			"end_time",
			"status",
			"service_name",
			"client_name",
			"client_email",
			"notes",
		).
		Values(
			appt.UserID,
			appt.ServiceTypeID,
			appt.StartTime,
			appt.EndTime,
			appt.Status,
			appt.ServiceName,
			appt.ClientName,
			appt.ClientEmail,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isSlotConflict(err) {
			return nil, fmt.Errorf("%w: Create - start %s", ErrSlotTaken, appt.StartTime.UTC().Format(time.RFC3339))
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// List получает записи с гибкой фильтрацией
// Поддерживает фильтрацию по:
// - Клиенту (UserID)
// - Периоду начала [From, To)
// - Статусу (Status) или только записям, занимающим слот (OnlySlot)
//
// Пример: активные записи за день для проверки доступности
//
//	filter := domain.AppointmentsFilter{From: &dayStart, To: &dayEnd, OnlySlot: true}
//
// Внутри транзакции с OnlySlot строки блокируются (FOR UPDATE), как при создании записи
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("start_time ASC")

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_time": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *filter.To})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if filter.OnlySlot {
		statuses := make([]string, len(domain.ScheduledStatuses))
		for i, s := range domain.ScheduledStatuses {
			statuses[i] = string(s)
		}
		selectBuilder = selectBuilder.Where("status = ANY(?)", pq.Array(statuses))
	}

	if dbmetrics.IsInTransaction(ctx) && filter.OnlySlot {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
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

	return scanAppointments(rows)
}

// GetClientIDs получает всех пользователей, которые когда-либо записывались
func (r *Repository) GetClientIDs(ctx context.Context) ([]uuid.UUID, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT user_id").
		From(table).
		OrderBy("user_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetClientIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetClientIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	userIDs := make([]uuid.UUID, 0)
	for rows.Next() {
		var userID uuid.UUID
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("%w: GetClientIDs - scan user_id: %v", ErrScanRow, err)
		}
		userIDs = append(userIDs, userID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetClientIDs - rows error: %v", ErrScanRow, err)
	}

	return userIDs, nil
}

// Cancel переводит запись в статус cancelled
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID) error {
	return r.update(ctx, "Cancel", id, map[string]interface{}{
		"status":       domain.StatusCancelled,
		"cancelled_at": squirrel.Expr("NOW()"),
	})
}

// Complete переводит запись в статус completed и сохраняет заметки по итогам сессии
func (r *Repository) Complete(ctx context.Context, id uuid.UUID, sessionNotes *string) error {
	return r.update(ctx, "Complete", id, map[string]interface{}{
		"status":        domain.StatusCompleted,
		"session_notes": sessionNotes,
	})
}

// SetMeetingLink сохраняет ссылку на видеовстречу
func (r *Repository) SetMeetingLink(ctx context.Context, id uuid.UUID, link *string) error {
	return r.update(ctx, "SetMeetingLink", id, map[string]interface{}{
		"meeting_link": link,
	})
}

// UpdateTimes переносит запись на новое время, статус и ID не меняются
// Занятый слот возвращает ErrSlotTaken
func (r *Repository) UpdateTimes(ctx context.Context, id uuid.UUID, start, end time.Time) error {
	err := r.update(ctx, "UpdateTimes", id, map[string]interface{}{
		"start_time": start,
		"end_time":   end,
	})
	if err != nil && isSlotConflict(err) {
		return fmt.Errorf("%w: UpdateTimes - start %s", ErrSlotTaken, start.UTC().Format(time.RFC3339))
	}
	return err
}

// update выполняет UPDATE одной записи с обновлением updated_at
func (r *Repository) update(ctx context.Context, op string, id uuid.UUID, values map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		SetMap(values).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.UserID,
		&appt.ServiceTypeID,
		&appt.StartTime,
		&appt.EndTime,
		&appt.Status,
		&appt.ServiceName,
		&appt.ClientName,
		&appt.ClientEmail,
		&appt.Notes,
		&appt.SessionNotes,
		&appt.MeetingLink,
		&appt.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
