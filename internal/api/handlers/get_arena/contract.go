package get_arena

import (
	"context"

	"github.com/m04kA/bookminton/internal/service/arena/models"
)

type ArenaService interface {
	Get(ctx context.Context) (*models.ArenaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
