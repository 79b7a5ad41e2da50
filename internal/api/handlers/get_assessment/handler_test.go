package get_assessment

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/internal/questionbank"
	"github.com/m04kA/coaching-scheduler/pkg/logger"
)

type fakeBank map[domain.TestType]*domain.Test

func (b fakeBank) Get(t domain.TestType) (*domain.Test, error) {
	test, ok := b[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", questionbank.ErrTestNotFound, t)
	}
	return test, nil
}

func TestHandler_Handle(t *testing.T) {
	bank := fakeBank{
		domain.TestLiteracy: {
			Type:    domain.TestLiteracy,
			Version: 1,
			Title:   "Financial Literacy",
			Parts: []domain.Part{{
				Key:   domain.PartKnowledge,
				Phase: "Knowledge",
				Sections: []domain.Section{{
					Key:   "budgeting",
					Title: "Budgeting",
					Questions: []domain.Question{{
						Kind:    domain.QuestionChoice,
						Text:    "What is a budget?",
						Options: []domain.Option{{Letter: "A", Text: "A plan"}, {Letter: "B", Text: "A loan"}},
						Answer:  "A",
					}},
				}},
			}},
		},
	}

	tests := []struct {
		name       string
		testType   string
		wantStatus int
	}{
		{name: "loaded", testType: "literacy", wantStatus: http.StatusOK},
		{name: "known but not loaded", testType: "stress", wantStatus: http.StatusNotFound},
		{name: "unknown", testType: "anxiety", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(bank, logger.NewNop())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/assessments/"+tt.testType, nil)
			req = mux.SetURLVars(req, map[string]string{"testType": tt.testType})
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), "What is a budget?")
				assert.NotContains(t, rec.Body.String(), `"answer"`)
			}
		})
	}
}
