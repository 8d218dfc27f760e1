package telegram

import (
	"fmt"
	"strings"

	"github.com/m04kA/bookminton/internal/domain"
)

var eventTitles = map[domain.BookingEventType]string{
	domain.EventBookingCreated:   "New booking",
	domain.EventBookingCheckedIn: "Checked in",
	domain.EventBookingCancelled: "Booking cancelled",
}

// FormatEvent текст уведомления персонала о событии
func FormatEvent(evt domain.BookingEvent) string {
	title, ok := eventTitles[evt.Type]
	if !ok {
		title = string(evt.Type)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "Court #%d, %s", evt.CourtID, evt.Date)
	if evt.StartTime != "" && evt.EndTime != "" {
		fmt.Fprintf(&b, " %s-%s", evt.StartTime, evt.EndTime)
	}
	if evt.CustomerName != "" {
		fmt.Fprintf(&b, "\nCustomer: %s", evt.CustomerName)
	}
	fmt.Fprintf(&b, "\nBooking: %s", evt.BookingID)

	return b.String()
}
