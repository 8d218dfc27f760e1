package bookings

import "errors"

var (
	// ErrNotFound возвращается, когда бронирование или заявка не найдены
	ErrNotFound = errors.New("bookings: booking not found")

	// ErrNotCheckedIn возвращается, когда сессия по бронированию ещё не началась
	ErrNotCheckedIn = errors.New("bookings: booking is not checked in")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
