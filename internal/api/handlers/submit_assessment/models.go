package submit_assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	submitAssessment "github.com/m04kA/coaching-scheduler/internal/usecase/submit_assessment"
)

// SubmitRequest HTTP request model, ответы по ключам "p-s-q"
type SubmitRequest struct {
	Answers map[string]string `json:"answers"`
}

// ResultResponse HTTP response model
type ResultResponse struct {
	ScoreID   *uuid.UUID              `json:"scoreId,omitempty"`
	Persisted bool                    `json:"persisted"`
	Breakdown *domain.ScoreBreakdown  `json:"breakdown"`
	Insights  []domain.SectionInsight `json:"insights"`
	CreatedAt *string                 `json:"createdAt,omitempty"`
}

func (r *SubmitRequest) ToUseCaseRequest(caller domain.Identity, testType domain.TestType) *submitAssessment.Request {
	return &submitAssessment.Request{
		Caller:   caller,
		TestType: testType,
		Answers:  r.Answers,
	}
}

func FromUseCaseResponse(resp *submitAssessment.Response) *ResultResponse {
	result := &ResultResponse{
		ScoreID:   resp.ScoreID,
		Persisted: resp.Persisted,
		Breakdown: resp.Breakdown,
		Insights:  resp.Insights,
	}
	if result.Insights == nil {
		result.Insights = []domain.SectionInsight{}
	}
	if resp.CreatedAt != nil {
		createdAt := resp.CreatedAt.Format(time.RFC3339)
		result.CreatedAt = &createdAt
	}
	return result
}
