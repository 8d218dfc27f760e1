package check_in

import (
	"context"
	"time"

	"github.com/m04kA/bookminton/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CheckIn(ctx context.Context, token string) (*domain.Booking, error)
}

// AvailabilityCache интерфейс кэша доступности
type AvailabilityCache interface {
	Invalidate(ctx context.Context, courtID int64, date time.Time) error
}

// EventPublisher интерфейс рассылки событий бронирований
type EventPublisher interface {
	Publish(ctx context.Context, evt domain.BookingEvent) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncCheckIn(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
