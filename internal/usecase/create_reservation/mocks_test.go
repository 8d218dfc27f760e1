package create_reservation

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/bookminton/internal/domain"
)

type mockCourtRepository struct {
	mock.Mock
}

func (m *mockCourtRepository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Court), args.Error(1)
}

type mockSlotRepository struct {
	mock.Mock
}

func (m *mockSlotRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Slot, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Slot), args.Error(1)
}

func (m *mockSlotRepository) Reserve(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) CreateBatch(ctx context.Context, bookings []*domain.Booking) ([]*domain.Booking, error) {
	args := m.Called(ctx, bookings)
	if fn, ok := args.Get(0).(func(context.Context, []*domain.Booking) []*domain.Booking); ok {
		return fn(ctx, bookings), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *mockBookingRepository) SetCheckInToken(ctx context.Context, id uuid.UUID, token string) error {
	return m.Called(ctx, id, token).Error(0)
}

type mockArenaRepository struct {
	mock.Mock
}

func (m *mockArenaRepository) GetProfile(ctx context.Context) (*domain.ArenaProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArenaProfile), args.Error(1)
}

type mockFileStorage struct {
	mock.Mock
}

func (m *mockFileStorage) Upload(ctx context.Context, bucket, name string, r io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, bucket, name, r, size, contentType)
	return args.String(0), args.Error(1)
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

func (m *mockMetrics) IncReservation(result string) {
	m.Called(result)
}

// mockTxManager выполняет функцию сразу, фиксируя факт вызова
// Если задан commitErr, он возвращается вместо успешной фиксации
type mockTxManager struct {
	calls     int
	commitErr error
}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return m.commitErr
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}
