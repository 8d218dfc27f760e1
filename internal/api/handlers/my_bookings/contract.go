package my_bookings

import (
	"context"

	"github.com/m04kA/bookminton/internal/domain"
	"github.com/m04kA/bookminton/internal/service/bookings/models"
)

type BookingService interface {
	ListMine(ctx context.Context, session *domain.Session) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
