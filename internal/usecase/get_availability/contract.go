package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/bookminton/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Slot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetBySlotIDs(ctx context.Context, slotIDs []int64) ([]*domain.Booking, error)
}

// AvailabilityCache интерфейс кэша доступности
// Set принимает поколение, прочитанное в Get до обращения к БД
type AvailabilityCache interface {
	Get(ctx context.Context, courtID int64, date time.Time) ([]domain.SlotAvailability, int64, bool, error)
	Set(ctx context.Context, courtID int64, date time.Time, generation int64, items []domain.SlotAvailability) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

