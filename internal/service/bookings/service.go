package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/bookminton/internal/domain"
	bookingRepo "github.com/m04kA/bookminton/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/bookminton/internal/infra/storage/slot"
	"github.com/m04kA/bookminton/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	courtRepo    CourtRepository
	arenaRepo    ArenaRepository
	cache        AvailabilityCache
	publisher    EventPublisher
	metrics      Metrics
	txManager    TransactionManager
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	courtRepo CourtRepository,
	arenaRepo ArenaRepository,
	cache AvailabilityCache,
	publisher EventPublisher,
	metrics Metrics,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		courtRepo:    courtRepo,
		arenaRepo:    arenaRepo,
		cache:        cache,
		publisher:    publisher,
		metrics:      metrics,
		txManager:    txManager,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// ListAll получает все бронирования с названиями кортов (панель администратора)
func (s *Service) ListAll(ctx context.Context) (*models.BookingListResponse, error) {
	items, err := s.bookingRepo.ListWithCourts(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	for _, item := range items {
		item.Localize(s.location)
	}

	s.logger.Info("ListAll: fetched %d bookings", len(items))
	return models.FromDomainBookingsWithCourts(items), nil
}

// ListMine получает бронирования авторизованного клиента
func (s *Service) ListMine(ctx context.Context, session *domain.Session) (*models.BookingListResponse, error) {
	if session == nil {
		return nil, ErrAccessDenied
	}

	items, err := s.bookingRepo.ListByUserWithCourts(ctx, session.UserID)
	if err != nil {
		s.logger.Error("ListMine: repository error for user=%d: %v", session.UserID, err)
		return nil, fmt.Errorf("%w: ListMine - repository error: %v", ErrInternal, err)
	}

	for _, item := range items {
		item.Localize(s.location)
	}

	return models.FromDomainBookingsWithCourts(items), nil
}

// GetReceipt собирает квитанцию по ID заявки
func (s *Service) GetReceipt(ctx context.Context, reservationID uuid.UUID) (*domain.Receipt, error) {
	bookings, err := s.bookingRepo.GetByReservationID(ctx, reservationID)
	if err != nil {
		s.logger.Error("GetReceipt: repository error for reservation=%s: %v", reservationID, err)
		return nil, fmt.Errorf("%w: GetReceipt - get bookings: %v", ErrInternal, err)
	}
	if len(bookings) == 0 {
		s.logger.Warn("GetReceipt: reservation=%s not found", reservationID)
		return nil, ErrNotFound
	}

	for _, b := range bookings {
		b.Localize(s.location)
	}

	court, err := s.courtRepo.GetByID(ctx, bookings[0].CourtID)
	if err != nil {
		s.logger.Error("GetReceipt: failed to get court=%d: %v", bookings[0].CourtID, err)
		return nil, fmt.Errorf("%w: GetReceipt - get court: %v", ErrInternal, err)
	}

	arena, err := s.arenaRepo.GetProfile(ctx)
	if err != nil {
		s.logger.Warn("GetReceipt: failed to get arena profile: %v", err)
		arena = nil
	}

	return domain.NewReceipt(bookings, court, arena), nil
}

// Countdown возвращает остаток игровой сессии бронирования
// Сессия идёт только после check-in, для статуса reserved возвращается ErrNotCheckedIn
func (s *Service) Countdown(ctx context.Context, id uuid.UUID) (*models.SessionResponse, error) {
	booking, err := s.getBooking(ctx, "Countdown", id)
	if err != nil {
		return nil, err
	}

	if booking.Status != domain.BookingInProgress {
		s.logger.Warn("Countdown: booking id=%s is not checked in, status=%s", id, booking.Status)
		return nil, fmt.Errorf("%w: status=%s", ErrNotCheckedIn, booking.Status)
	}

	countdown := domain.NewSessionCountdown(booking.EndAt, s.timeProvider.Now())
	return models.FromSessionCountdown(booking, countdown), nil
}

// Cancel удаляет бронирование и освобождает его слот в одной транзакции
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	var deleted *domain.Booking
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		deleted, err = s.bookingRepo.Delete(txCtx, id)
		if err != nil {
			return err
		}

		if deleted.SlotID == nil {
			return nil
		}
		err = s.slotRepo.Release(txCtx, *deleted.SlotID)
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Cancel: slot id=%d of booking id=%s no longer exists", *deleted.SlotID, id)
			return nil
		}
		return err
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", id)
			return ErrNotFound
		}
		s.logger.Error("Cancel: transaction failed for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - transaction: %v", ErrInternal, err)
	}

	deleted.Localize(s.location)
	s.metrics.IncCancellation()
	s.logger.Info("Cancel: booking id=%s cancelled, slot released=%t", id, deleted.SlotID != nil)

	if err := s.cache.Invalidate(ctx, deleted.CourtID, deleted.StartAt); err != nil {
		s.logger.Warn("Cancel: failed to invalidate availability court=%d: %v", deleted.CourtID, err)
	}
	evt := domain.NewBookingEvent(domain.EventBookingCancelled, deleted, s.timeProvider.Now())
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("Cancel: failed to publish event booking=%s: %v", id, err)
	}

	return nil
}

func (s *Service) getBooking(ctx context.Context, op string, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	booking.Localize(s.location)
	return booking, nil
}
