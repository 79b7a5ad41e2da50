package submit_assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

// Request модель запроса на подсчет результата теста
type Request struct {
	Caller   domain.Identity   // Анонимный вызов не сохраняет результат
	TestType domain.TestType   // Тип теста
	Answers  map[string]string // Ответы по ключам "p-s-q"
}

// Response модель ответа с результатом
type Response struct {
	ScoreID   *uuid.UUID              // ID сохраненного результата, nil для анонимного вызова
	Persisted bool                    // Результат сохранен
	Breakdown *domain.ScoreBreakdown  // Разбивка результата
	Insights  []domain.SectionInsight // Сильные стороны и зоны роста по секциям
	CreatedAt *time.Time              // Время сохранения
}
