package create_reservation

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/bookminton/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Slot, error)
	Reserve(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CreateBatch(ctx context.Context, bookings []*domain.Booking) ([]*domain.Booking, error)
	SetCheckInToken(ctx context.Context, id uuid.UUID, token string) error
}

// ArenaRepository интерфейс репозитория профиля арены
type ArenaRepository interface {
	GetProfile(ctx context.Context) (*domain.ArenaProfile, error)
}

// FileStorage интерфейс хранилища файлов
type FileStorage interface {
	Upload(ctx context.Context, bucket, name string, r io.Reader, size int64, contentType string) (string, error)
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
	IncReservation(result string)
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
