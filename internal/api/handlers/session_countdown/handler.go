package session_countdown

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/bookminton/internal/api/handlers"
	"github.com/m04kA/bookminton/internal/domain"
	"github.com/m04kA/bookminton/internal/service/bookings"
	"github.com/m04kA/bookminton/internal/service/bookings/models"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgNotCheckedIn     = "сессия начнётся после check-in"

	eventCountdown = "countdown"
)

type Handler struct {
	service  BookingService
	logger   Logger
	interval time.Duration
	now      func() time.Time
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service:  service,
		logger:   logger,
		interval: time.Second,
		now:      time.Now,
	}
}

// Handle GET /api/v1/admin/bookings/{bookingId}/session
// Поток SSE с остатком сессии раз в секунду, закрывается после события с ended=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("GET /admin/bookings/{id}/session - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	session, err := h.service.Countdown(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, bookings.ErrNotFound) {
			h.logger.Warn("GET /admin/bookings/{id}/session - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		if errors.Is(err, bookings.ErrNotCheckedIn) {
			h.logger.Warn("GET /admin/bookings/{id}/session - Booking not checked in: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgNotCheckedIn)
			return
		}
		h.logger.Error("GET /admin/bookings/{id}/session - Failed to get countdown: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	stream := handlers.StartSSE(w)
	h.logger.Info("GET /admin/bookings/{id}/session - Stream opened: booking_id=%s, remaining=%s", bookingID, session.Label)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		if err := stream.Send(eventCountdown, session); err != nil {
			h.logger.Warn("GET /admin/bookings/{id}/session - Stream write failed: booking_id=%s, error=%v", bookingID, err)
			return
		}
		if session.Ended {
			h.logger.Info("GET /admin/bookings/{id}/session - Session ended: booking_id=%s", bookingID)
			return
		}

		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			session = tick(session, h.now())
		}
	}
}

func tick(prev *models.SessionResponse, now time.Time) *models.SessionResponse {
	next := *prev
	c := domain.NewSessionCountdown(prev.EndAt, now)
	next.RemainingSeconds = int64(c.Remaining / time.Second)
	next.Label = c.Label()
	next.Ended = c.Ended
	return &next
}
