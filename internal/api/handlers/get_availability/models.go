package get_availability

import (
	"strconv"
	"time"

	"github.com/m04kA/bookminton/internal/domain"
	getAvailability "github.com/m04kA/bookminton/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CourtID int64  `json:"courtId"`
	Date    string `json:"date"`
	Slots   []Slot `json:"slots"`
}

// Slot слот корта со статусом
type Slot struct {
	ID            int64   `json:"id"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours float64 `json:"durationHours"`
	Status        string  `json:"status"` // available | reserved | occupied
	BookingID     *string `json:"bookingId,omitempty"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(courtID int64, dateStr, onlyAvailableStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	onlyAvailable := false
	if onlyAvailableStr != "" {
		onlyAvailable, err = strconv.ParseBool(onlyAvailableStr)
		if err != nil {
			return nil, err
		}
	}

	return &getAvailability.Request{
		CourtID:       courtID,
		Date:          date,
		OnlyAvailable: onlyAvailable,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = Slot{
			ID:            s.ID,
			StartTime:     s.StartTime.String(),
			EndTime:       s.EndTime.String(),
			DurationHours: s.DurationHours,
			Status:        string(s.Status),
			BookingID:     s.BookingID,
		}
	}

	return &AvailabilityResponse{
		CourtID: resp.CourtID,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}
