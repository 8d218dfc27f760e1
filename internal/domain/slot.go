package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/bookminton/pkg/types"
)

// SlotStatus отображаемый статус слота
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotReserved  SlotStatus = "reserved"
	SlotOccupied  SlotStatus = "occupied"
)

// Slot бронируемый интервал корта на дату, полуоткрытый [StartTime, EndTime)
type Slot struct {
	ID        int64
	CourtID   int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Reserved  bool
}

// Validate проверяет формат времени и порядок границ
func (s *Slot) Validate() error {
	if err := s.StartTime.Validate(); err != nil {
		return err
	}
	if err := s.EndTime.Validate(); err != nil {
		return err
	}
	if !s.StartTime.IsBefore(s.EndTime) {
		return fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, s.StartTime, s.EndTime)
	}
	return nil
}

// DurationHours длительность слота в часах (дробная)
func (s *Slot) DurationHours() float64 {
	return DurationHours(s.StartTime, s.EndTime)
}

// Overlaps проверяет пересечение интервалов (касание границ не считается)
func (s *Slot) Overlaps(other *Slot) bool {
	return s.StartTime.IsBefore(other.EndTime) && s.EndTime.IsAfter(other.StartTime)
}

// StartAt момент начала слота в указанной локации
func (s *Slot) StartAt(loc *time.Location) time.Time {
	return s.StartTime.On(s.Date, loc)
}

// EndAt момент окончания слота в указанной локации
func (s *Slot) EndAt(loc *time.Location) time.Time {
	return s.EndTime.On(s.Date, loc)
}

// SlotAvailability слот с вычисленным статусом
type SlotAvailability struct {
	Slot      Slot
	Status    SlotStatus
	BookingID *string
}

// ResolveSlotStatus вычисляет статус слота по флагу и связанному бронированию
// Зарезервированный слот без бронирования отображается как reserved
func ResolveSlotStatus(slot *Slot, linked *Booking) SlotStatus {
	if !slot.Reserved {
		return SlotAvailable
	}
	if linked != nil && linked.Status == BookingInProgress {
		return SlotOccupied
	}
	return SlotReserved
}

// FindOverlap возвращает первый слот из existing, пересекающийся с candidate
func FindOverlap(candidate *Slot, existing []*Slot) *Slot {
	for _, s := range existing {
		if s.ID == candidate.ID && s.ID != 0 {
			continue
		}
		if candidate.Overlaps(s) {
			return s
		}
	}
	return nil
}

// SameDay сравнивает календарные даты без учёта часового пояса представления
func SameDay(a, b time.Time) bool {
	return a.Format(DateFormat) == b.Format(DateFormat)
}

// ValidateSelection проверяет, что найдены все выбранные слоты и они относятся к корту и дате
func ValidateSelection(slots []*Slot, ids []int64, courtID int64, date time.Time) error {
	if len(slots) != len(ids) {
		return fmt.Errorf("%w: %d of %d selected slots not found", ErrInvalidDetails, len(ids)-len(slots), len(ids))
	}
	for _, s := range slots {
		if s.CourtID != courtID || !SameDay(s.Date, date) {
			return fmt.Errorf("%w: slot id=%d does not belong to court=%d on %s",
				ErrInvalidDetails, s.ID, courtID, date.Format(DateFormat))
		}
	}
	return nil
}
