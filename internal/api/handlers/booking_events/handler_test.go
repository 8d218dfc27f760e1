package booking_events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/bookminton/internal/domain"
	"github.com/m04kA/bookminton/pkg/logger"
)

type fakeSource struct {
	events       chan domain.BookingEvent
	unsubscribed bool
}

func (f *fakeSource) Subscribe() (<-chan domain.BookingEvent, func()) {
	return f.events, func() { f.unsubscribed = true }
}

func TestHandler_Handle_ForwardsEvents(t *testing.T) {
	source := &fakeSource{events: make(chan domain.BookingEvent, 2)}
	source.events <- domain.BookingEvent{Type: domain.EventBookingCreated, BookingID: "b-1", CourtID: 1, Date: "2025-06-01"}
	source.events <- domain.BookingEvent{Type: domain.EventBookingCancelled, BookingID: "b-1", CourtID: 1, Date: "2025-06-01"}
	close(source.events)

	rec := httptest.NewRecorder()
	NewHandler(source, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings/events", nil))

	body := rec.Body.String()
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, "event: booking.created\ndata: {\"event\":\"booking.created\",\"bookingId\":\"b-1\"")
	assert.Contains(t, body, "event: booking.cancelled\n")
	assert.True(t, source.unsubscribed)
}

func TestHandler_Handle_PingsAndStopsOnDisconnect(t *testing.T) {
	source := &fakeSource{events: make(chan domain.BookingEvent)}
	h := NewHandler(source, logger.NewNop())
	h.pingInterval = time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Contains(t, rec.Body.String(), ": ping\n\n")
	assert.True(t, source.unsubscribed)
}
