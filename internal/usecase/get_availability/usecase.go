package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/bookminton/internal/domain"
	courtRepo "github.com/m04kA/bookminton/internal/infra/storage/court"
	"github.com/m04kA/bookminton/pkg/ptr"
)

// UseCase use case получения доступности слотов корта
type UseCase struct {
	courtRepo   CourtRepository
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	cache       AvailabilityCache
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	cache AvailabilityCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:   courtRepo,
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
		logger:      logger,
	}
}

// Execute возвращает слоты корта на дату по возрастанию времени начала со статусами
// Ошибки кэша не прерывают запрос: данные читаются из БД
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	items, err := uc.load(ctx, req)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		CourtID: req.CourtID,
		Date:    req.Date,
		Slots:   make([]SlotInfo, 0, len(items)),
	}
	for _, item := range items {
		if req.OnlyAvailable && item.Status != domain.SlotAvailable {
			continue
		}
		resp.Slots = append(resp.Slots, SlotInfo{
			ID:            item.Slot.ID,
			StartTime:     item.Slot.StartTime,
			EndTime:       item.Slot.EndTime,
			DurationHours: item.Slot.DurationHours(),
			Status:        item.Status,
			BookingID:     item.BookingID,
		})
	}

	return resp, nil
}

func (uc *UseCase) load(ctx context.Context, req *Request) ([]domain.SlotAvailability, error) {
	// Поколение читается до обращения к БД: запись, инвалидированная во время чтения, не будет обслужена
	cached, generation, found, cacheErr := uc.cache.Get(ctx, req.CourtID, req.Date)
	if cacheErr != nil {
		uc.logger.Warn("GetAvailability: cache read failed court=%d date=%s: %v",
			req.CourtID, req.Date.Format(domain.DateFormat), cacheErr)
	}
	if found {
		return cached, nil
	}

	if _, err := uc.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailability: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailability: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	slots, err := uc.slotRepo.GetByCourtAndDate(ctx, req.CourtID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get slots court=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	slotIDs := make([]int64, 0, len(slots))
	for _, s := range slots {
		if s.Reserved {
			slotIDs = append(slotIDs, s.ID)
		}
	}

	bookings, err := uc.bookingRepo.GetBySlotIDs(ctx, slotIDs)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings court=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	items := resolve(slots, bookings)

	// Без известного поколения запись могла бы перекрыть более свежую инвалидацию
	if cacheErr == nil {
		if err := uc.cache.Set(ctx, req.CourtID, req.Date, generation, items); err != nil {
			uc.logger.Warn("GetAvailability: cache write failed court=%d: %v", req.CourtID, err)
		}
	}

	return items, nil
}

// resolve сопоставляет слоты с бронированиями и вычисляет статусы
func resolve(slots []*domain.Slot, bookings []*domain.Booking) []domain.SlotAvailability {
	bySlot := make(map[int64]*domain.Booking, len(bookings))
	for _, b := range bookings {
		if b.SlotID != nil {
			bySlot[*b.SlotID] = b
		}
	}

	items := make([]domain.SlotAvailability, 0, len(slots))
	for _, s := range slots {
		item := domain.SlotAvailability{Slot: *s}

		var linked *domain.Booking
		if s.Reserved {
			linked = bySlot[s.ID]
		}
		item.Status = domain.ResolveSlotStatus(s, linked)
		if linked != nil {
			item.BookingID = ptr.Ptr(linked.ID.String())
		}

		items = append(items, item)
	}

	return items
}
