package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/bookminton/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*domain.Booking, error)
	ListWithCourts(ctx context.Context) ([]*domain.BookingWithCourt, error)
	ListByUserWithCourts(ctx context.Context, userID int64) ([]*domain.BookingWithCourt, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Release(ctx context.Context, id int64) error
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// ArenaRepository интерфейс репозитория профиля арены
type ArenaRepository interface {
	GetProfile(ctx context.Context) (*domain.ArenaProfile, error)
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
	IncCancellation()
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
