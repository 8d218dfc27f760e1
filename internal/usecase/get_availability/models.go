package get_availability

import (
	"time"

	"github.com/m04kA/bookminton/internal/domain"
	"github.com/m04kA/bookminton/pkg/types"
)

// Request модель запроса доступности
type Request struct {
	CourtID       int64
	Date          time.Time // Дата (без времени)
	OnlyAvailable bool      // Только свободные слоты (форма клиента)
}

// SlotInfo слот с вычисленным статусом
type SlotInfo struct {
	ID            int64
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours float64
	Status        domain.SlotStatus
	BookingID     *string // ID бронирования, если слот занят
}

// Response модель ответа со слотами корта на дату
type Response struct {
	CourtID int64
	Date    time.Time
	Slots   []SlotInfo
}
