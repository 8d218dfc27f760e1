package check_in

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/bookminton/internal/domain"
	bookingRepo "github.com/m04kA/bookminton/internal/infra/storage/booking"
	"github.com/m04kA/bookminton/pkg/logger"
)

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) CheckIn(ctx context.Context, token string) (*domain.Booking, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Invalidate(ctx context.Context, courtID int64, date time.Time) error {
	return m.Called(ctx, courtID, date).Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, evt domain.BookingEvent) error {
	return m.Called(ctx, evt).Error(0)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) IncCheckIn(result string) {
	m.Called(result)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

func newUseCase(now time.Time) (*UseCase, *mockBookingRepository, *mockCache, *mockPublisher, *mockMetrics) {
	repo := &mockBookingRepository{}
	cache := &mockCache{}
	publisher := &mockPublisher{}
	metrics := &mockMetrics{}
	uc := NewUseCase(repo, cache, publisher, metrics, time.UTC, logger.NewNop())
	uc.timeProvider = fixedTime{now: now}
	return uc, repo, cache, publisher, metrics
}

func TestUseCase_Execute_ReservedToInProgress(t *testing.T) {
	start := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	uc, repo, cache, publisher, metrics := newUseCase(start.Add(15 * time.Minute))
	ctx := context.Background()
	id := uuid.New()

	booking := &domain.Booking{
		ID:           id,
		CourtID:      1,
		StartAt:      start,
		EndAt:        start.Add(time.Hour),
		Status:       domain.BookingInProgress,
		CheckInToken: id.String(),
	}
	repo.On("CheckIn", ctx, id.String()).Return(booking, nil)
	cache.On("Invalidate", ctx, int64(1), start).Return(nil)
	publisher.On("Publish", ctx, mock.MatchedBy(func(evt domain.BookingEvent) bool {
		return evt.Type == domain.EventBookingCheckedIn && evt.BookingID == id.String()
	})).Return(nil)
	metrics.On("IncCheckIn", "ok").Return()

	resp, err := uc.Execute(ctx, &Request{Token: " " + id.String() + " "})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingInProgress, resp.Booking.Status)
	assert.Equal(t, "45m 0s", resp.Countdown.Label())
	publisher.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestUseCase_Execute_UnknownToken(t *testing.T) {
	uc, repo, _, publisher, metrics := newUseCase(time.Now())
	ctx := context.Background()

	repo.On("CheckIn", ctx, "nonexistent-id").Return(nil, bookingRepo.ErrBookingNotFound)
	metrics.On("IncCheckIn", "not_found").Return()

	_, err := uc.Execute(ctx, &Request{Token: "nonexistent-id"})

	assert.ErrorIs(t, err, ErrNotFound)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_RepositoryFailure(t *testing.T) {
	uc, repo, _, _, metrics := newUseCase(time.Now())
	ctx := context.Background()

	repo.On("CheckIn", ctx, "abc").Return(nil, errors.New("connection reset"))
	metrics.On("IncCheckIn", "failed").Return()

	_, err := uc.Execute(ctx, &Request{Token: "abc"})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_EmptyToken(t *testing.T) {
	uc, repo, _, _, _ := newUseCase(time.Now())

	_, err := uc.Execute(context.Background(), &Request{Token: "  "})

	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "CheckIn", mock.Anything, mock.Anything)
}
