package create_reservation

import (
	"time"

	"github.com/m04kA/bookminton/internal/domain"
)

// Request данные формы бронирования вместе с подтверждением оплаты
type Request struct {
	CourtID       int64
	Date          time.Time
	SlotIDs       []int64
	CustomerName  string
	CustomerPhone string
	Proof         domain.PaymentProof
	Session       *domain.Session // nil для гостя
}

// Response созданные бронирования (по одному на слот) и квитанция
type Response struct {
	Bookings []*domain.Booking
	Receipt  *domain.Receipt
}
