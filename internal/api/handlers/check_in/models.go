package check_in

import (
	"github.com/m04kA/bookminton/internal/service/bookings/models"
	checkIn "github.com/m04kA/bookminton/internal/usecase/check_in"
)

// CheckInRequest HTTP request model
type CheckInRequest struct {
	Token string `json:"token"`
}

// CheckInResponse HTTP response model
type CheckInResponse struct {
	Booking models.BookingResponse `json:"booking"`
	Session models.SessionResponse `json:"session"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckInRequest) ToUseCaseRequest() *checkIn.Request {
	return &checkIn.Request{Token: r.Token}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkIn.Response) *CheckInResponse {
	return &CheckInResponse{
		Booking: *models.FromDomainBooking(resp.Booking),
		Session: *models.FromSessionCountdown(resp.Booking, resp.Countdown),
	}
}
