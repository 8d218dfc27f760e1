package booking_events

import (
	"net/http"
	"time"

	"github.com/m04kA/bookminton/internal/api/handlers"
)

const defaultPingInterval = 30 * time.Second

type Handler struct {
	source       EventSource
	logger       Logger
	pingInterval time.Duration
}

func NewHandler(source EventSource, logger Logger) *Handler {
	return &Handler{
		source:       source,
		logger:       logger,
		pingInterval: defaultPingInterval,
	}
}

// Handle GET /api/v1/admin/bookings/events
// Поток SSE: каждое изменение бронирований приходит событием с именем типа (booking.created, ...)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	events, unsubscribe := h.source.Subscribe()
	defer unsubscribe()

	stream := handlers.StartSSE(w)
	h.logger.Info("GET /admin/bookings/events - Stream opened: remote=%s", r.RemoteAddr)

	ping := time.NewTicker(h.pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /admin/bookings/events - Stream closed: remote=%s", r.RemoteAddr)
			return

		case evt, ok := <-events:
			if !ok {
				h.logger.Info("GET /admin/bookings/events - Event source closed")
				return
			}
			if err := stream.Send(string(evt.Type), evt); err != nil {
				h.logger.Warn("GET /admin/bookings/events - Stream write failed: %v", err)
				return
			}

		case <-ping.C:
			if err := stream.Ping(); err != nil {
				h.logger.Warn("GET /admin/bookings/events - Ping failed: %v", err)
				return
			}
		}
	}
}
