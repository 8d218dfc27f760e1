package check_in

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/bookminton/internal/domain"
	bookingRepo "github.com/m04kA/bookminton/internal/infra/storage/booking"
)

// UseCase use case отметки прихода клиента (reserved -> in_progress)
type UseCase struct {
	bookingRepo  BookingRepository
	cache        AvailabilityCache
	publisher    EventPublisher
	metrics      Metrics
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	cache AvailabilityCache,
	publisher EventPublisher,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		cache:        cache,
		publisher:    publisher,
		metrics:      metrics,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute переводит бронирование в in_progress
// Повторный check-in и неизвестный токен возвращают ErrNotFound без изменений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	token := strings.TrimSpace(req.Token)
	if token == "" {
		uc.logger.Warn("CheckIn: empty token")
		return nil, fmt.Errorf("%w: token is required", ErrInvalidInput)
	}

	booking, err := uc.bookingRepo.CheckIn(ctx, token)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CheckIn: no reserved booking for token=%s", token)
			uc.metrics.IncCheckIn("not_found")
			return nil, ErrNotFound
		}
		uc.logger.Error("CheckIn: failed to check in token=%s: %v", token, err)
		uc.metrics.IncCheckIn("failed")
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	booking.Localize(uc.location)
	now := uc.timeProvider.Now()
	uc.metrics.IncCheckIn("ok")
	uc.logger.Info("CheckIn: booking=%s is in progress until %s", booking.ID, booking.EndAt.Format("15:04:05"))

	if err := uc.cache.Invalidate(ctx, booking.CourtID, booking.StartAt); err != nil {
		uc.logger.Warn("CheckIn: failed to invalidate availability court=%d: %v", booking.CourtID, err)
	}
	if err := uc.publisher.Publish(ctx, domain.NewBookingEvent(domain.EventBookingCheckedIn, booking, now)); err != nil {
		uc.logger.Warn("CheckIn: failed to publish event booking=%s: %v", booking.ID, err)
	}

	return &Response{
		Booking:   booking,
		Countdown: domain.NewSessionCountdown(booking.EndAt, now),
	}, nil
}
