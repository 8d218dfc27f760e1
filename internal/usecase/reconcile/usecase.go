package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/bookminton/internal/domain"
)

const (
	actionReleased = "released"
	actionReserved = "reserved"
)

// UseCase use case сверки флага резервирования слотов с бронированиями
type UseCase struct {
	slotRepo  SlotRepository
	cache     AvailabilityCache
	metrics   Metrics
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	cache AvailabilityCache,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		cache:     cache,
		metrics:   metrics,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет один проход сверки в транзакции
func (uc *UseCase) Execute(ctx context.Context) (*Result, error) {
	result := &Result{}
	var touched []*domain.Slot

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		orphans, err := uc.slotRepo.ListOrphanReserved(txCtx)
		if err != nil {
			return fmt.Errorf("list orphan reserved: %w", err)
		}

		unmarked, err := uc.slotRepo.ListUnreservedWithBooking(txCtx)
		if err != nil {
			return fmt.Errorf("list unreserved with booking: %w", err)
		}

		if result.Released, err = uc.slotRepo.SetReserved(txCtx, slotIDs(orphans), false); err != nil {
			return fmt.Errorf("release orphans: %w", err)
		}

		if result.Reserved, err = uc.slotRepo.SetReserved(txCtx, slotIDs(unmarked), true); err != nil {
			return fmt.Errorf("reserve booked: %w", err)
		}

		touched = append(orphans, unmarked...)
		return nil
	})
	if err != nil {
		uc.logger.Error("Reconcile: sweep failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.AddReconciled(actionReleased, int(result.Released))
	uc.metrics.AddReconciled(actionReserved, int(result.Reserved))

	if result.Released > 0 || result.Reserved > 0 {
		uc.logger.Warn("Reconcile: repaired drift released=%d reserved=%d", result.Released, result.Reserved)
		uc.invalidate(ctx, touched)
	}

	return result, nil
}

// Run запускает сверку по таймеру до отмены контекста
// Ошибка прохода логируется, следующий проход выполняется по расписанию
func (uc *UseCase) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		uc.logger.Info("Reconcile: disabled")
		return
	}

	uc.logger.Info("Reconcile: started, interval=%s", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			uc.logger.Info("Reconcile: stopped")
			return
		case <-ticker.C:
			_, _ = uc.Execute(ctx)
		}
	}
}

func (uc *UseCase) invalidate(ctx context.Context, slots []*domain.Slot) {
	type key struct {
		courtID int64
		date    string
	}
	seen := make(map[key]struct{}, len(slots))

	for _, s := range slots {
		k := key{courtID: s.CourtID, date: s.Date.Format(domain.DateFormat)}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}

		if err := uc.cache.Invalidate(ctx, s.CourtID, s.Date); err != nil {
			uc.logger.Warn("Reconcile: failed to invalidate availability court=%d date=%s: %v", s.CourtID, k.date, err)
		}
	}
}

func slotIDs(slots []*domain.Slot) []int64 {
	ids := make([]int64, 0, len(slots))
	for _, s := range slots {
		ids = append(ids, s.ID)
	}
	return ids
}
