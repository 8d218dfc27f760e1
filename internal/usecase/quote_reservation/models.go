package quote_reservation

import (
	"time"

	"github.com/m04kA/bookminton/internal/domain"
	"github.com/m04kA/bookminton/pkg/types"
)

// Request данные первого шага формы бронирования
type Request struct {
	CourtID       int64
	Date          time.Time
	SlotIDs       []int64
	CustomerName  string
	CustomerPhone string
	Session       *domain.Session // nil для гостя
}

// SessionQuote выбранный слот с длительностью
type SessionQuote struct {
	SlotID        int64
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours float64
}

// Response расчёт стоимости и реквизиты для шага оплаты
type Response struct {
	Step          domain.FormStep
	CourtID       int64
	CourtName     string
	HourlyPrice   int64
	Date          time.Time
	CustomerName  string
	CustomerPhone string
	Sessions      []SessionQuote
	TotalHours    float64
	TotalPrice    float64
	Payment       domain.PaymentInstructions
}
