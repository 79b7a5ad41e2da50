package toggle_block

import (
	"context"

	toggleBlock "github.com/m04kA/coaching-scheduler/internal/usecase/toggle_block"
)

type ToggleBlockUseCase interface {
	Execute(ctx context.Context, req *toggleBlock.Request) (*toggleBlock.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
