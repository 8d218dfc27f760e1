package create_reservation

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/bookminton/internal/api/handlers"
	"github.com/m04kA/bookminton/internal/domain"
	"github.com/m04kA/bookminton/internal/service/bookings/models"
	createReservation "github.com/m04kA/bookminton/internal/usecase/create_reservation"
)

// Поля multipart формы
const (
	fieldCourtID       = "courtId"
	fieldDate          = "date"
	fieldSlotIDs       = "slotIds"
	fieldCustomerName  = "customerName"
	fieldCustomerPhone = "customerPhone"
	fieldPaymentProof  = "paymentProof"
)

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ReservationID string                   `json:"reservationId"`
	Bookings      []models.BookingResponse `json:"bookings"`
	Receipt       *models.ReceiptResponse  `json:"receipt"`
}

// ToUseCaseRequest собирает запрос use case из полей формы
// Файл подтверждения читается отдельно
func ToUseCaseRequest(r *http.Request, proof *handlers.UploadedFile, session *domain.Session) (*createReservation.Request, error) {
	courtID, err := strconv.ParseInt(strings.TrimSpace(r.FormValue(fieldCourtID)), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("courtId: %w", err)
	}

	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(r.FormValue(fieldDate)))
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	slotIDs, err := handlers.ParseIDList(r.MultipartForm.Value[fieldSlotIDs])
	if err != nil {
		return nil, fmt.Errorf("slotIds: %w", err)
	}

	return &createReservation.Request{
		CourtID:       courtID,
		Date:          date,
		SlotIDs:       slotIDs,
		CustomerName:  r.FormValue(fieldCustomerName),
		CustomerPhone: r.FormValue(fieldCustomerPhone),
		Proof: domain.PaymentProof{
			FileName:    proof.FileName,
			ContentType: proof.ContentType,
			Data:        proof.Data,
		},
		Session: session,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	result := &ReservationResponse{
		Bookings: make([]models.BookingResponse, 0, len(resp.Bookings)),
		Receipt:  models.FromDomainReceipt(resp.Receipt),
	}

	for _, b := range resp.Bookings {
		result.Bookings = append(result.Bookings, *models.FromDomainBooking(b))
	}
	if resp.Receipt != nil {
		result.ReservationID = resp.Receipt.ReservationID.String()
	}

	return result
}
