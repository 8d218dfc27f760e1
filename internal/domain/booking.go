package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	BookingReserved   BookingStatus = "reserved"
	BookingInProgress BookingStatus = "in_progress"
)

// Booking бронирование одного слота
type Booking struct {
	ID              uuid.UUID
	ReservationID   uuid.UUID // общий для всех бронирований одной заявки
	CourtID         int64
	SlotID          *int64 // nil для старых записей без ссылки на слот
	UserID          *int64 // заполнен, если клиент был авторизован
	CustomerName    string
	CustomerPhone   string
	StartAt         time.Time
	EndAt           time.Time
	Status          BookingStatus
	PaymentProofURL string
	CheckInToken    string
	CreatedAt       time.Time
}

// Code короткий код бронирования для квитанции
func (b *Booking) Code() string {
	return strings.ToUpper(b.ID.String()[:ReceiptCodeLength])
}

// CanCheckIn проверяет, можно ли отметить приход
func (b *Booking) CanCheckIn() bool {
	return b.Status == BookingReserved
}

// Localize переводит время сессии в часовой пояс арены
func (b *Booking) Localize(loc *time.Location) {
	if loc == nil {
		return
	}
	b.StartAt = b.StartAt.In(loc)
	b.EndAt = b.EndAt.In(loc)
}

// DurationHours длительность бронирования в часах
func (b *Booking) DurationHours() float64 {
	return b.EndAt.Sub(b.StartAt).Hours()
}

// BookingWithCourt бронирование с названием корта для списков
type BookingWithCourt struct {
	Booking
	CourtName string
}

// BookingEventType тип события изменения бронирований
type BookingEventType string

const (
	EventBookingCreated   BookingEventType = "booking.created"
	EventBookingCheckedIn BookingEventType = "booking.checked_in"
	EventBookingCancelled BookingEventType = "booking.cancelled"
)

// BookingEvent уведомление об изменении таблицы бронирований
type BookingEvent struct {
	Type          BookingEventType `json:"event"`
	BookingID     string           `json:"bookingId"`
	ReservationID string           `json:"reservationId,omitempty"`
	CourtID       int64            `json:"courtId"`
	Date          string           `json:"date"`
	CustomerName  string           `json:"customerName,omitempty"`
	StartTime     string           `json:"startTime,omitempty"`
	EndTime       string           `json:"endTime,omitempty"`
	OccurredAt    time.Time        `json:"occurredAt"`
}

// NewBookingEvent собирает событие по бронированию
func NewBookingEvent(t BookingEventType, b *Booking, now time.Time) BookingEvent {
	evt := BookingEvent{
		Type:         t,
		BookingID:    b.ID.String(),
		CourtID:      b.CourtID,
		Date:         b.StartAt.Format(DateFormat),
		CustomerName: b.CustomerName,
		StartTime:    b.StartAt.Format(TimeFormat),
		EndTime:      b.EndAt.Format(TimeFormat),
		OccurredAt:   now,
	}
	if b.ReservationID != uuid.Nil {
		evt.ReservationID = b.ReservationID.String()
	}
	return evt
}
