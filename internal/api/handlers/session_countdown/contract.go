package session_countdown

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/bookminton/internal/service/bookings/models"
)

type BookingService interface {
	Countdown(ctx context.Context, id uuid.UUID) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
