package booking_events

import "github.com/m04kA/bookminton/internal/domain"

// EventSource источник событий бронирований (pgnotify.Hub)
type EventSource interface {
	Subscribe() (<-chan domain.BookingEvent, func())
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
