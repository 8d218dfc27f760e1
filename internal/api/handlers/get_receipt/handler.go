package get_receipt

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/bookminton/internal/api/handlers"
	"github.com/m04kA/bookminton/internal/domain"
	"github.com/m04kA/bookminton/internal/infra/render"
	"github.com/m04kA/bookminton/internal/service/bookings"
	"github.com/m04kA/bookminton/internal/service/bookings/models"
)

const (
	msgInvalidReservationID = "некорректный ID заявки"
	msgNotFound             = "заявка не найдена"
)

type Handler struct {
	service  ReceiptService
	location *time.Location
	logger   Logger
}

func NewHandler(service ReceiptService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// HandleJSON GET /api/v1/reservations/{reservationId}/receipt
func (h *Handler) HandleJSON(w http.ResponseWriter, r *http.Request) {
	receipt, ok := h.load(w, r, "GET /reservations/{id}/receipt")
	if !ok {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainReceipt(receipt))
}

// HandlePDF GET /api/v1/reservations/{reservationId}/receipt.pdf
func (h *Handler) HandlePDF(w http.ResponseWriter, r *http.Request) {
	const op = "GET /reservations/{id}/receipt.pdf"

	receipt, ok := h.load(w, r, op)
	if !ok {
		return
	}

	pdf, err := render.ReceiptPDF(receipt, h.location)
	if err != nil {
		h.logger.Error("%s - Failed to render PDF: reservation_id=%s, error=%v", op, receipt.ReservationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("%s - Receipt rendered: reservation_id=%s, bytes=%d", op, receipt.ReservationID, len(pdf))
	handlers.RespondBinary(w, "application/pdf", fmt.Sprintf("receipt-%s.pdf", receipt.Code), pdf)
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request, op string) (*domain.Receipt, bool) {
	reservationID, err := uuid.Parse(mux.Vars(r)["reservationId"])
	if err != nil {
		h.logger.Warn("%s - Invalid reservation ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return nil, false
	}

	receipt, err := h.service.GetReceipt(r.Context(), reservationID)
	if err != nil {
		if errors.Is(err, bookings.ErrNotFound) {
			h.logger.Warn("%s - Reservation not found: reservation_id=%s", op, reservationID)
			handlers.RespondNotFound(w, msgNotFound)
			return nil, false
		}
		h.logger.Error("%s - Failed to get receipt: reservation_id=%s, error=%v", op, reservationID, err)
		handlers.RespondInternalError(w)
		return nil, false
	}

	return receipt, true
}
