package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/bookminton/internal/domain"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, evt domain.BookingEvent) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

type mockLogger struct {
	warnings int
}

func (l *mockLogger) Warn(string, ...interface{}) { l.warnings++ }

func TestMulti_Publish_ContinuesAfterFailure(t *testing.T) {
	failing := &mockPublisher{}
	healthy := &mockPublisher{}
	logger := &mockLogger{}
	evt := domain.BookingEvent{Type: domain.EventBookingCreated, BookingID: "b-1"}

	failing.On("Publish", mock.Anything, evt).Return(errors.New("broker down"))
	healthy.On("Publish", mock.Anything, evt).Return(nil)

	err := NewMulti(logger, failing, nil, healthy).Publish(context.Background(), evt)

	assert.NoError(t, err)
	assert.Equal(t, 1, logger.warnings)
	failing.AssertExpectations(t)
	healthy.AssertExpectations(t)
}
