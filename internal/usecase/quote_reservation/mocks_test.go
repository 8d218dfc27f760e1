package quote_reservation

import (
	"context"

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
