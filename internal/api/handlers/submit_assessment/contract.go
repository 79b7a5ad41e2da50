package submit_assessment

import (
	"context"

	submitAssessment "github.com/m04kA/coaching-scheduler/internal/usecase/submit_assessment"
)

type SubmitAssessmentUseCase interface {
	Execute(ctx context.Context, req *submitAssessment.Request) (*submitAssessment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
