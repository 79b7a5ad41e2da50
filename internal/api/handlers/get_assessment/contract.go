package get_assessment

import (
	"github.com/m04kA/coaching-scheduler/internal/domain"
)

type QuestionBank interface {
	Get(t domain.TestType) (*domain.Test, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
