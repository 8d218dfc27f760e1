package bookings

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
	"github.com/m04kA/bookminton/pkg/ptr"
)

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepository) GetByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*domain.Booking, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *mockBookingRepository) ListWithCourts(ctx context.Context) ([]*domain.BookingWithCourt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BookingWithCourt), args.Error(1)
}

func (m *mockBookingRepository) ListByUserWithCourts(ctx context.Context, userID int64) ([]*domain.BookingWithCourt, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BookingWithCourt), args.Error(1)
}

func (m *mockBookingRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type mockSlotRepository struct {
	mock.Mock
}

func (m *mockSlotRepository) Release(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

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

func (m *mockMetrics) IncCancellation() {
	m.Called()
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type fixture struct {
	bookings  *mockBookingRepository
	slots     *mockSlotRepository
	courts    *mockCourtRepository
	arena     *mockArenaRepository
	cache     *mockCache
	publisher *mockPublisher
	metrics   *mockMetrics
	service   *Service
}

var testNow = time.Date(2025, 6, 1, 8, 20, 30, 0, time.UTC)

func newFixture() *fixture {
	f := &fixture{
		bookings:  &mockBookingRepository{},
		slots:     &mockSlotRepository{},
		courts:    &mockCourtRepository{},
		arena:     &mockArenaRepository{},
		cache:     &mockCache{},
		publisher: &mockPublisher{},
		metrics:   &mockMetrics{},
	}
	f.service = NewService(f.bookings, f.slots, f.courts, f.arena, f.cache, f.publisher, f.metrics,
		passthroughTx{}, time.UTC, logger.NewNop())
	f.service.timeProvider = fixedTime{now: testNow}
	return f
}

func annBooking() *domain.Booking {
	start := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	id := uuid.MustParse("1f0c2a7e-0000-4000-8000-000000000001")
	return &domain.Booking{
		ID:            id,
		ReservationID: uuid.MustParse("9a9a9a9a-0000-4000-8000-000000000009"),
		CourtID:       1,
		SlotID:        ptr.Ptr(int64(10)),
		CustomerName:  "Ann",
		CustomerPhone: "081234567",
		StartAt:       start,
		EndAt:         start.Add(time.Hour),
		Status:        domain.BookingReserved,
		CheckInToken:  id.String(),
	}
}

func TestService_Cancel(t *testing.T) {
	f := newFixture()
	booking := annBooking()

	f.bookings.On("Delete", mock.Anything, booking.ID).Return(booking, nil)
	f.slots.On("Release", mock.Anything, int64(10)).Return(nil)
	f.metrics.On("IncCancellation").Return()
	f.cache.On("Invalidate", mock.Anything, int64(1), booking.StartAt).Return(nil)
	f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(evt domain.BookingEvent) bool {
		return evt.Type == domain.EventBookingCancelled && evt.BookingID == booking.ID.String() && evt.Date == "2025-06-01"
	})).Return(nil)

	err := f.service.Cancel(context.Background(), booking.ID)

	require.NoError(t, err)
	f.slots.AssertExpectations(t)
	f.metrics.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestService_Cancel_WithoutSlotReference(t *testing.T) {
	f := newFixture()
	booking := annBooking()
	booking.SlotID = nil

	f.bookings.On("Delete", mock.Anything, booking.ID).Return(booking, nil)
	f.metrics.On("IncCancellation").Return()
	f.cache.On("Invalidate", mock.Anything, int64(1), mock.Anything).Return(nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, f.service.Cancel(context.Background(), booking.ID))
	f.slots.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
}

func TestService_Cancel_NotFound(t *testing.T) {
	f := newFixture()
	id := uuid.New()

	f.bookings.On("Delete", mock.Anything, id).Return(nil, bookingRepo.ErrBookingNotFound)

	err := f.service.Cancel(context.Background(), id)

	assert.ErrorIs(t, err, ErrNotFound)
	f.metrics.AssertNotCalled(t, "IncCancellation")
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestService_Cancel_ReleaseFails(t *testing.T) {
	f := newFixture()
	booking := annBooking()

	f.bookings.On("Delete", mock.Anything, booking.ID).Return(booking, nil)
	f.slots.On("Release", mock.Anything, int64(10)).Return(errors.New("connection reset"))

	err := f.service.Cancel(context.Background(), booking.ID)

	assert.ErrorIs(t, err, ErrInternal)
	f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Cancel_EventFailureIsIgnored(t *testing.T) {
	f := newFixture()
	booking := annBooking()

	f.bookings.On("Delete", mock.Anything, booking.ID).Return(booking, nil)
	f.slots.On("Release", mock.Anything, int64(10)).Return(nil)
	f.metrics.On("IncCancellation").Return()
	f.cache.On("Invalidate", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("notify failed"))

	assert.NoError(t, f.service.Cancel(context.Background(), booking.ID))
}

func TestService_GetReceipt(t *testing.T) {
	f := newFixture()
	first := annBooking()
	second := annBooking()
	second.ID = uuid.New()
	second.StartAt = first.EndAt
	second.EndAt = first.EndAt.Add(30 * time.Minute)

	f.bookings.On("GetByReservationID", mock.Anything, first.ReservationID).
		Return([]*domain.Booking{second, first}, nil)
	f.courts.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Court{ID: 1, Name: "Court A", Price: 100000}, nil)
	f.arena.On("GetProfile", mock.Anything).
		Return(&domain.ArenaProfile{Name: "Bookminton Arena"}, nil)

	receipt, err := f.service.GetReceipt(context.Background(), first.ReservationID)

	require.NoError(t, err)
	assert.Equal(t, "1F0C2A7E", receipt.Code)
	assert.Equal(t, "Court A", receipt.CourtName)
	assert.Equal(t, "Bookminton Arena", receipt.Arena.Name)
	assert.Equal(t, 1.5, receipt.TotalHours)
	assert.Equal(t, float64(150000), receipt.TotalPrice)
	require.Len(t, receipt.Sessions, 2)
	assert.Equal(t, first.ID, receipt.Sessions[0].BookingID)
}

func TestService_GetReceipt_NotFound(t *testing.T) {
	f := newFixture()
	id := uuid.New()

	f.bookings.On("GetByReservationID", mock.Anything, id).Return([]*domain.Booking{}, nil)

	_, err := f.service.GetReceipt(context.Background(), id)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_GetReceipt_ArenaMissing(t *testing.T) {
	f := newFixture()
	booking := annBooking()

	f.bookings.On("GetByReservationID", mock.Anything, booking.ReservationID).Return([]*domain.Booking{booking}, nil)
	f.courts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Court{ID: 1, Name: "Court A", Price: 75000}, nil)
	f.arena.On("GetProfile", mock.Anything).Return(nil, errors.New("timeout"))

	receipt, err := f.service.GetReceipt(context.Background(), booking.ReservationID)

	require.NoError(t, err)
	assert.Empty(t, receipt.Arena.Name)
	assert.Equal(t, float64(75000), receipt.TotalPrice)
}

func TestService_Countdown(t *testing.T) {
	f := newFixture()
	booking := annBooking()
	booking.Status = domain.BookingInProgress

	f.bookings.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

	resp, err := f.service.Countdown(context.Background(), booking.ID)

	require.NoError(t, err)
	assert.Equal(t, "39m 30s", resp.Label)
	assert.Equal(t, int64(39*60+30), resp.RemainingSeconds)
	assert.False(t, resp.Ended)
}

func TestService_Countdown_Ended(t *testing.T) {
	f := newFixture()
	booking := annBooking()
	booking.Status = domain.BookingInProgress
	booking.EndAt = testNow.Add(-time.Minute)

	f.bookings.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

	resp, err := f.service.Countdown(context.Background(), booking.ID)

	require.NoError(t, err)
	assert.True(t, resp.Ended)
	assert.Equal(t, domain.SessionEndedLabel, resp.Label)
}

func TestService_Countdown_NotCheckedIn(t *testing.T) {
	f := newFixture()
	booking := annBooking()
	booking.Status = domain.BookingReserved

	f.bookings.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

	_, err := f.service.Countdown(context.Background(), booking.ID)

	assert.ErrorIs(t, err, ErrNotCheckedIn)
}

func TestService_ListMine(t *testing.T) {
	f := newFixture()
	booking := annBooking()
	booking.UserID = ptr.Ptr(int64(7))

	f.bookings.On("ListByUserWithCourts", mock.Anything, int64(7)).
		Return([]*domain.BookingWithCourt{{Booking: *booking, CourtName: "Court A"}}, nil)

	resp, err := f.service.ListMine(context.Background(), &domain.Session{UserID: 7})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "Court A", resp.Bookings[0].CourtName)
	assert.Equal(t, "08:00", resp.Bookings[0].StartTime)
	assert.Equal(t, "09:00", resp.Bookings[0].EndTime)

	_, err = f.service.ListMine(context.Background(), nil)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_ListAll_LocalizesTimes(t *testing.T) {
	f := newFixture()
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	f.service.location = jakarta

	booking := annBooking()
	booking.StartAt = time.Date(2025, 6, 1, 1, 0, 0, 0, time.UTC)
	booking.EndAt = booking.StartAt.Add(time.Hour)

	f.bookings.On("ListWithCourts", mock.Anything).
		Return([]*domain.BookingWithCourt{{Booking: *booking, CourtName: "Court A"}}, nil)

	resp, err := f.service.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "08:00", resp.Bookings[0].StartTime)
	assert.Equal(t, "2025-06-01", resp.Bookings[0].Date)
}

func TestService_GetByID_NotFound(t *testing.T) {
	f := newFixture()
	id := uuid.New()

	f.bookings.On("GetByID", mock.Anything, id).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := f.service.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, ErrNotFound)
}
