package reconcile

import (
	"context"
	"time"

	"github.com/m04kA/bookminton/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListOrphanReserved(ctx context.Context) ([]*domain.Slot, error)
	ListUnreservedWithBooking(ctx context.Context) ([]*domain.Slot, error)
	SetReserved(ctx context.Context, ids []int64, reserved bool) (int64, error)
}

// AvailabilityCache интерфейс кэша доступности
type AvailabilityCache interface {
	Invalidate(ctx context.Context, courtID int64, date time.Time) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	AddReconciled(action string, n int)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
