package account

import (
	"context"

	"github.com/m04kA/bookminton/internal/domain"
	"github.com/m04kA/bookminton/internal/service/auth/models"
)

type AuthService interface {
	SignUp(ctx context.Context, req *models.SignUpRequest) (*models.UserResponse, error)
	SignIn(ctx context.Context, req *models.SignInRequest) (*models.TokenResponse, error)
	SignOut(ctx context.Context, session *domain.Session) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
