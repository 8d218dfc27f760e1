package check_in

import "github.com/m04kA/bookminton/internal/domain"

// Request отсканированный или введённый вручную токен
type Request struct {
	Token string
}

// Response бронирование после check-in и остаток сессии
type Response struct {
	Booking   *domain.Booking
	Countdown domain.SessionCountdown
}
