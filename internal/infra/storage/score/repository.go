package score

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/pkg/dbmetrics"
	"github.com/m04kA/coaching-scheduler/pkg/psqlbuilder"
)

const table = "assessment_scores"

var columns = []string{"id", "user_id", "test_type", "breakdown", "answers", "created_at"}

// Repository репозиторий результатов тестов
// Результаты неизменяемы: повторное прохождение создает новую строку
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория результатов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет результат теста, breakdown и answers хранятся в JSONB
func (r *Repository) Create(ctx context.Context, s *domain.Score) (*domain.Score, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	breakdown, err := json.Marshal(s.Breakdown)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - breakdown: %v", ErrEncode, err)
	}
	answers, err := json.Marshal(s.Answers)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - answers: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("user_id", "test_type", "version", "overall_score", "breakdown", "answers").
		Values(s.UserID, s.TestType, s.Breakdown.Version, s.Breakdown.OverallScore, breakdown, answers).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	s.CreatedAt = createdAt.Time

	return s, nil
}

// GetByID получает результат по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Score, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanScore(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScoreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan score: %v", ErrScanRow, err)
	}

	return s, nil
}

// GetByUserID получает результаты пользователя, новые первыми
// Опционально фильтрует по типу теста
func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID, testType *domain.TestType) ([]*domain.Score, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if testType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"test_type": *testType})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	scores := make([]*domain.Score, 0)
	for rows.Next() {
		s, err := scanScore(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}
		scores = append(scores, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return scores, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanScore(row rowScanner) (*domain.Score, error) {
	var s domain.Score
	var breakdown, answers []byte
	var createdAt sql.NullTime

	if err := row.Scan(&s.ID, &s.UserID, &s.TestType, &breakdown, &answers, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(breakdown, &s.Breakdown); err != nil {
		return nil, fmt.Errorf("decode breakdown: %w", err)
	}
	if len(answers) > 0 {
		if err := json.Unmarshal(answers, &s.Answers); err != nil {
			return nil, fmt.Errorf("decode answers: %w", err)
		}
	}
	s.CreatedAt = createdAt.Time

	return &s, nil
}
