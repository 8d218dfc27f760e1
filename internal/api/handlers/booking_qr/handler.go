package booking_qr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/bookminton/internal/api/handlers"
	"github.com/m04kA/bookminton/internal/infra/render"
	"github.com/m04kA/bookminton/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgNoToken          = "у бронирования нет кода для check-in"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/qr.png
// Возвращает QR-код с токеном check-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/qr.png - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, bookings.ErrNotFound) {
			h.logger.Warn("GET /bookings/{id}/qr.png - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /bookings/{id}/qr.png - Failed to get booking: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	if booking.CheckInToken == "" {
		h.logger.Warn("GET /bookings/{id}/qr.png - Booking has no token: booking_id=%s", bookingID)
		handlers.RespondNotFound(w, msgNoToken)
		return
	}

	png, err := render.QRCodePNG(booking.CheckInToken, render.DefaultQRSize)
	if err != nil {
		h.logger.Error("GET /bookings/{id}/qr.png - Failed to render QR: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondBinary(w, "image/png", fmt.Sprintf("booking-%s.png", booking.Code), png)
}
