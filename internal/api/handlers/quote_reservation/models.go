package quote_reservation

import (
	"time"

	"github.com/m04kA/bookminton/internal/domain"
	quoteReservation "github.com/m04kA/bookminton/internal/usecase/quote_reservation"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	CourtID       int64   `json:"courtId"`
	Date          string  `json:"date"` // "2025-06-01"
	SlotIDs       []int64 `json:"slotIds"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Step          string         `json:"step"`
	CourtID       int64          `json:"courtId"`
	CourtName     string         `json:"courtName"`
	HourlyPrice   int64          `json:"hourlyPrice"`
	Date          string         `json:"date"`
	CustomerName  string         `json:"customerName"`
	CustomerPhone string         `json:"customerPhone"`
	Sessions      []SessionQuote `json:"sessions"`
	TotalHours    float64        `json:"totalHours"`
	TotalPrice    float64        `json:"totalPrice"`
	Payment       Payment        `json:"payment"`
}

// SessionQuote выбранный слот
type SessionQuote struct {
	SlotID        int64   `json:"slotId"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours float64 `json:"durationHours"`
}

// Payment реквизиты оплаты
type Payment struct {
	BankInfo string `json:"bankInfo"`
	QRISURL  string `json:"qrisUrl"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest(session *domain.Session) (*quoteReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &quoteReservation.Request{
		CourtID:       r.CourtID,
		Date:          date,
		SlotIDs:       r.SlotIDs,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Session:       session,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteReservation.Response) *QuoteResponse {
	sessions := make([]SessionQuote, len(resp.Sessions))
	for i, s := range resp.Sessions {
		sessions[i] = SessionQuote{
			SlotID:        s.SlotID,
			StartTime:     s.StartTime.String(),
			EndTime:       s.EndTime.String(),
			DurationHours: s.DurationHours,
		}
	}

	return &QuoteResponse{
		Step:          string(resp.Step),
		CourtID:       resp.CourtID,
		CourtName:     resp.CourtName,
		HourlyPrice:   resp.HourlyPrice,
		Date:          resp.Date.Format(domain.DateFormat),
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		Sessions:      sessions,
		TotalHours:    resp.TotalHours,
		TotalPrice:    resp.TotalPrice,
		Payment: Payment{
			BankInfo: resp.Payment.BankInfo,
			QRISURL:  resp.Payment.QRISURL,
		},
	}
}
