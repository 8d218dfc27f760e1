package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// ReceiptSession одна игровая сессия в квитанции
type ReceiptSession struct {
	BookingID    uuid.UUID
	StartAt      time.Time
	EndAt        time.Time
	Status       BookingStatus
	CheckInToken string
}

// Receipt подтверждение бронирования, показываемое клиенту после оплаты
type Receipt struct {
	ReservationID   uuid.UUID
	Code            string
	Arena           ArenaProfile
	CourtID         int64
	CourtName       string
	CustomerName    string
	CustomerPhone   string
	Date            time.Time
	Sessions        []ReceiptSession
	TotalHours      float64
	TotalPrice      float64
	PaymentProofURL string
	CreatedAt       time.Time
}

// NewReceipt собирает квитанцию по бронированиям одной заявки
// bookings не должен быть пустым
func NewReceipt(bookings []*Booking, court *Court, arena *ArenaProfile) *Receipt {
	sorted := make([]*Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartAt.Before(sorted[j].StartAt)
	})

	first := sorted[0]
	receipt := &Receipt{
		ReservationID:   first.ReservationID,
		Code:            first.Code(),
		CourtID:         court.ID,
		CourtName:       court.Name,
		CustomerName:    first.CustomerName,
		CustomerPhone:   first.CustomerPhone,
		Date:            first.StartAt,
		Sessions:        make([]ReceiptSession, 0, len(sorted)),
		PaymentProofURL: first.PaymentProofURL,
		CreatedAt:       first.CreatedAt,
	}
	if arena != nil {
		receipt.Arena = *arena
	}

	for _, b := range sorted {
		receipt.TotalHours += b.DurationHours()
		receipt.Sessions = append(receipt.Sessions, ReceiptSession{
			BookingID:    b.ID,
			StartAt:      b.StartAt,
			EndAt:        b.EndAt,
			Status:       b.Status,
			CheckInToken: b.CheckInToken,
		})
	}
	receipt.TotalPrice = receipt.TotalHours * float64(court.Price)

	return receipt
}
