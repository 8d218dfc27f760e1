package models

import (
	"time"

	"github.com/m04kA/bookminton/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	ReservationID   string    `json:"reservationId"`
	CourtID         int64     `json:"courtId"`
	CourtName       string    `json:"courtName,omitempty"`
	SlotID          *int64    `json:"slotId,omitempty"`
	UserID          *int64    `json:"userId,omitempty"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	Date            string    `json:"date"`      // "2025-06-01"
	StartTime       string    `json:"startTime"` // "08:00"
	EndTime         string    `json:"endTime"`
	StartAt         time.Time `json:"startAt"`
	EndAt           time.Time `json:"endAt"`
	DurationHours   float64   `json:"durationHours"`
	Status          string    `json:"status"`
	PaymentProofURL string    `json:"paymentProofUrl"`
	CheckInToken    string    `json:"checkInToken"`
	CreatedAt       time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ReceiptSessionResponse сессия в квитанции
type ReceiptSessionResponse struct {
	BookingID    string `json:"bookingId"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Status       string `json:"status"`
	CheckInToken string `json:"checkInToken"`
}

// ArenaInfo брендинг арены в квитанции
type ArenaInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	LogoURL string `json:"logoUrl,omitempty"`
}

// ReceiptResponse ответ с квитанцией заявки
type ReceiptResponse struct {
	ReservationID   string                   `json:"reservationId"`
	Code            string                   `json:"code"`
	Arena           ArenaInfo                `json:"arena"`
	CourtID         int64                    `json:"courtId"`
	CourtName       string                   `json:"courtName"`
	CustomerName    string                   `json:"customerName"`
	CustomerPhone   string                   `json:"customerPhone"`
	Date            string                   `json:"date"`
	Sessions        []ReceiptSessionResponse `json:"sessions"`
	TotalHours      float64                  `json:"totalHours"`
	TotalPrice      float64                  `json:"totalPrice"`
	PaymentProofURL string                   `json:"paymentProofUrl"`
	CreatedAt       time.Time                `json:"createdAt"`
}

// SessionResponse остаток игровой сессии
type SessionResponse struct {
	BookingID        string    `json:"bookingId"`
	Status           string    `json:"status"`
	EndAt            time.Time `json:"endAt"`
	RemainingSeconds int64     `json:"remainingSeconds"`
	Label            string    `json:"label"`
	Ended            bool      `json:"ended"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID.String(),
		Code:            b.Code(),
		ReservationID:   b.ReservationID.String(),
		CourtID:         b.CourtID,
		SlotID:          b.SlotID,
		UserID:          b.UserID,
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		Date:            b.StartAt.Format(domain.DateFormat),
		StartTime:       b.StartAt.Format(domain.TimeFormat),
		EndTime:         b.EndAt.Format(domain.TimeFormat),
		StartAt:         b.StartAt,
		EndAt:           b.EndAt,
		DurationHours:   b.DurationHours(),
		Status:          string(b.Status),
		PaymentProofURL: b.PaymentProofURL,
		CheckInToken:    b.CheckInToken,
		CreatedAt:       b.CreatedAt,
	}
}

// FromDomainBookingsWithCourts конвертирует список бронирований с кортами в DTO
func FromDomainBookingsWithCourts(bookings []*domain.BookingWithCourt) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		item := FromDomainBooking(&b.Booking)
		item.CourtName = b.CourtName
		resp.Bookings = append(resp.Bookings, *item)
	}

	return resp
}

// FromDomainReceipt конвертирует квитанцию в DTO
func FromDomainReceipt(r *domain.Receipt) *ReceiptResponse {
	if r == nil {
		return nil
	}

	resp := &ReceiptResponse{
		ReservationID: r.ReservationID.String(),
		Code:          r.Code,
		Arena: ArenaInfo{
			Name:    r.Arena.Name,
			Address: r.Arena.Address,
			LogoURL: r.Arena.LogoURL,
		},
		CourtID:         r.CourtID,
		CourtName:       r.CourtName,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		Date:            r.Date.Format(domain.DateFormat),
		Sessions:        make([]ReceiptSessionResponse, 0, len(r.Sessions)),
		TotalHours:      r.TotalHours,
		TotalPrice:      r.TotalPrice,
		PaymentProofURL: r.PaymentProofURL,
		CreatedAt:       r.CreatedAt,
	}

	for _, s := range r.Sessions {
		resp.Sessions = append(resp.Sessions, ReceiptSessionResponse{
			BookingID:    s.BookingID.String(),
			StartTime:    s.StartAt.Format(domain.TimeFormat),
			EndTime:      s.EndAt.Format(domain.TimeFormat),
			Status:       string(s.Status),
			CheckInToken: s.CheckInToken,
		})
	}

	return resp
}

// FromSessionCountdown собирает DTO остатка сессии
func FromSessionCountdown(b *domain.Booking, c domain.SessionCountdown) *SessionResponse {
	return &SessionResponse{
		BookingID:        b.ID.String(),
		Status:           string(b.Status),
		EndAt:            b.EndAt,
		RemainingSeconds: int64(c.Remaining / time.Second),
		Label:            c.Label(),
		Ended:            c.Ended,
	}
}
