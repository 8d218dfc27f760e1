package update_arena

import (
	"context"

	"github.com/m04kA/bookminton/internal/service/arena/models"
)

type ArenaService interface {
	UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest) (*models.ArenaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
