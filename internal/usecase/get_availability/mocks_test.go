package get_availability

import (
	"context"
	"time"

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

func (m *mockSlotRepository) GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Slot, error) {
	args := m.Called(ctx, courtID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Slot), args.Error(1)
}

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) GetBySlotIDs(ctx context.Context, slotIDs []int64) ([]*domain.Booking, error) {
	args := m.Called(ctx, slotIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, courtID int64, date time.Time) ([]domain.SlotAvailability, int64, bool, error) {
	args := m.Called(ctx, courtID, date)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Bool(2), args.Error(3)
	}
	return args.Get(0).([]domain.SlotAvailability), args.Get(1).(int64), args.Bool(2), args.Error(3)
}

func (m *mockCache) Set(ctx context.Context, courtID int64, date time.Time, generation int64, items []domain.SlotAvailability) error {
	args := m.Called(ctx, courtID, date, generation, items)
	return args.Error(0)
}
