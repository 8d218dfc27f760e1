package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/bookminton/internal/domain"
	courtRepo "github.com/m04kA/bookminton/internal/infra/storage/court"
	slotRepo "github.com/m04kA/bookminton/internal/infra/storage/slot"
	"github.com/m04kA/bookminton/internal/service/catalog/models"
	"github.com/m04kA/bookminton/pkg/logger"
)

type mockCourtRepository struct {
	mock.Mock
}

func (m *mockCourtRepository) List(ctx context.Context) ([]*domain.Court, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Court), args.Error(1)
}

func (m *mockCourtRepository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Court), args.Error(1)
}

func (m *mockCourtRepository) Create(ctx context.Context, c *domain.Court) (*domain.Court, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Court), args.Error(1)
}

func (m *mockCourtRepository) Update(ctx context.Context, c *domain.Court) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCourtRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
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

func (m *mockSlotRepository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Slot), args.Error(1)
}

func (m *mockSlotRepository) Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
	args := m.Called(ctx, s)
	if fn, ok := args.Get(0).(func(*domain.Slot) *domain.Slot); ok {
		return fn(s), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Slot), args.Error(1)
}

func (m *mockSlotRepository) DeleteUnreserved(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Invalidate(ctx context.Context, courtID int64, date time.Time) error {
	return m.Called(ctx, courtID, date).Error(0)
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	courts  *mockCourtRepository
	slots   *mockSlotRepository
	cache   *mockCache
	service *Service
}

func newFixture() *fixture {
	f := &fixture{
		courts: &mockCourtRepository{},
		slots:  &mockSlotRepository{},
		cache:  &mockCache{},
	}
	f.service = NewService(f.courts, f.slots, f.cache, passthroughTx{}, logger.NewNop())
	return f
}

var june1 = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestService_CreateCourt(t *testing.T) {
	f := newFixture()

	f.courts.On("Create", mock.Anything, &domain.Court{Name: "Court A", Price: 100000}).
		Return(&domain.Court{ID: 1, Name: "Court A", Price: 100000}, nil)

	resp, err := f.service.CreateCourt(context.Background(), &models.CourtRequest{Name: " Court A ", Price: 100000})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
}

func TestService_CreateCourt_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CourtRequest
	}{
		{name: "empty name", req: models.CourtRequest{Name: "  ", Price: 100000}},
		{name: "zero price", req: models.CourtRequest{Name: "Court A", Price: 0}},
		{name: "negative price", req: models.CourtRequest{Name: "Court A", Price: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			_, err := f.service.CreateCourt(context.Background(), &tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			f.courts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_UpdateCourt_NotFound(t *testing.T) {
	f := newFixture()

	f.courts.On("Update", mock.Anything, mock.Anything).Return(courtRepo.ErrCourtNotFound)

	_, err := f.service.UpdateCourt(context.Background(), 42, &models.CourtRequest{Name: "Court B", Price: 75000})

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestService_DeleteCourt_InUse(t *testing.T) {
	f := newFixture()

	f.courts.On("Delete", mock.Anything, int64(1)).Return(courtRepo.ErrCourtInUse)

	assert.ErrorIs(t, f.service.DeleteCourt(context.Background(), 1), ErrCourtInUse)
}

func TestService_CreateSlot(t *testing.T) {
	f := newFixture()

	f.courts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Court{ID: 1}, nil)
	f.slots.On("GetByCourtAndDate", mock.Anything, int64(1), june1).Return([]*domain.Slot{
		{ID: 3, CourtID: 1, Date: june1, StartTime: "07:00", EndTime: "08:00"},
		{ID: 4, CourtID: 1, Date: june1, StartTime: "09:00", EndTime: "10:00"},
	}, nil)
	f.slots.On("Create", mock.Anything, mock.Anything).Return(func(s *domain.Slot) *domain.Slot {
		s.ID = 10
		return s
	}, nil)
	f.cache.On("Invalidate", mock.Anything, int64(1), june1).Return(nil)

	resp, err := f.service.CreateSlot(context.Background(), &models.CreateSlotRequest{
		CourtID: 1, Date: "2025-06-01", StartTime: "08:00", EndTime: "09:00",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, 1.0, resp.DurationHours)
	assert.False(t, resp.Reserved)
	f.cache.AssertExpectations(t)
}

func TestService_CreateSlot_Overlap(t *testing.T) {
	f := newFixture()

	f.courts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Court{ID: 1}, nil)
	f.slots.On("GetByCourtAndDate", mock.Anything, int64(1), june1).Return([]*domain.Slot{
		{ID: 3, CourtID: 1, Date: june1, StartTime: "08:00", EndTime: "09:00"},
	}, nil)

	_, err := f.service.CreateSlot(context.Background(), &models.CreateSlotRequest{
		CourtID: 1, Date: "2025-06-01", StartTime: "08:30", EndTime: "09:30",
	})

	assert.ErrorIs(t, err, ErrSlotOverlap)
	f.slots.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateSlot_InvalidRange(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateSlotRequest
	}{
		{name: "end before start", req: models.CreateSlotRequest{CourtID: 1, Date: "2025-06-01", StartTime: "10:00", EndTime: "09:00"}},
		{name: "equal bounds", req: models.CreateSlotRequest{CourtID: 1, Date: "2025-06-01", StartTime: "10:00", EndTime: "10:00"}},
		{name: "bad time", req: models.CreateSlotRequest{CourtID: 1, Date: "2025-06-01", StartTime: "25:00", EndTime: "26:00"}},
		{name: "bad date", req: models.CreateSlotRequest{CourtID: 1, Date: "01.06.2025", StartTime: "08:00", EndTime: "09:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			_, err := f.service.CreateSlot(context.Background(), &tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_CreateSlot_CourtNotFound(t *testing.T) {
	f := newFixture()

	f.courts.On("GetByID", mock.Anything, int64(7)).Return(nil, courtRepo.ErrCourtNotFound)

	_, err := f.service.CreateSlot(context.Background(), &models.CreateSlotRequest{
		CourtID: 7, Date: "2025-06-01", StartTime: "08:00", EndTime: "09:00",
	})

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestService_DeleteSlot(t *testing.T) {
	f := newFixture()

	f.slots.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Slot{ID: 3, CourtID: 1, Date: june1, StartTime: "08:00", EndTime: "09:00"}, nil)
	f.slots.On("DeleteUnreserved", mock.Anything, int64(3)).Return(nil)
	f.cache.On("Invalidate", mock.Anything, int64(1), june1).Return(errors.New("redis down"))

	assert.NoError(t, f.service.DeleteSlot(context.Background(), 3))
}

func TestService_DeleteSlot_Reserved(t *testing.T) {
	f := newFixture()

	f.slots.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Slot{ID: 3, CourtID: 1, Date: june1, Reserved: true}, nil)

	assert.ErrorIs(t, f.service.DeleteSlot(context.Background(), 3), ErrSlotReserved)
	f.slots.AssertNotCalled(t, "DeleteUnreserved", mock.Anything, mock.Anything)
}

func TestService_DeleteSlot_ReservedConcurrently(t *testing.T) {
	f := newFixture()

	f.slots.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Slot{ID: 3, CourtID: 1, Date: june1}, nil)
	f.slots.On("DeleteUnreserved", mock.Anything, int64(3)).Return(slotRepo.ErrSlotNotAvailable)

	assert.ErrorIs(t, f.service.DeleteSlot(context.Background(), 3), ErrSlotReserved)
}

func TestService_ListSlots(t *testing.T) {
	f := newFixture()

	f.slots.On("GetByCourtAndDate", mock.Anything, int64(1), june1).Return([]*domain.Slot{
		{ID: 3, CourtID: 1, Date: june1, StartTime: "08:00", EndTime: "09:30", Reserved: true},
	}, nil)

	resp, err := f.service.ListSlots(context.Background(), 1, "2025-06-01")

	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, 1.5, resp.Slots[0].DurationHours)
	assert.True(t, resp.Slots[0].Reserved)
}
