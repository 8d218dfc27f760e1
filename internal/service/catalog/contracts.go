package catalog

import (
	"context"
	"time"

	"github.com/m04kA/bookminton/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	List(ctx context.Context) ([]*domain.Court, error)
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	Create(ctx context.Context, c *domain.Court) (*domain.Court, error)
	Update(ctx context.Context, c *domain.Court) error
	Delete(ctx context.Context, id int64) error
}

// SlotRepository интерфейс репозитория расписания
type SlotRepository interface {
	GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Slot, error)
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error)
	DeleteUnreserved(ctx context.Context, id int64) error
}

// AvailabilityCache интерфейс кэша доступности
type AvailabilityCache interface {
	Invalidate(ctx context.Context, courtID int64, date time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
