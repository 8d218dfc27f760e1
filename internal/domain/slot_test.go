package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveSlotStatus(t *testing.T) {
	reserved := &Booking{Status: BookingReserved}
	inProgress := &Booking{Status: BookingInProgress}

	assert.Equal(t, SlotAvailable, ResolveSlotStatus(&Slot{Reserved: false}, nil))
	assert.Equal(t, SlotReserved, ResolveSlotStatus(&Slot{Reserved: true}, reserved))
	assert.Equal(t, SlotOccupied, ResolveSlotStatus(&Slot{Reserved: true}, inProgress))
	assert.Equal(t, SlotReserved, ResolveSlotStatus(&Slot{Reserved: true}, nil))
}

func TestSlot_Overlaps(t *testing.T) {
	base := &Slot{StartTime: "08:00", EndTime: "09:00"}

	assert.True(t, base.Overlaps(&Slot{StartTime: "08:30", EndTime: "09:30"}))
	assert.True(t, base.Overlaps(&Slot{StartTime: "07:00", EndTime: "10:00"}))
	assert.False(t, base.Overlaps(&Slot{StartTime: "09:00", EndTime: "10:00"}))
	assert.False(t, base.Overlaps(&Slot{StartTime: "07:00", EndTime: "08:00"}))
}

func TestSlot_Validate(t *testing.T) {
	assert.NoError(t, (&Slot{StartTime: "08:00", EndTime: "09:00"}).Validate())
	assert.ErrorIs(t, (&Slot{StartTime: "09:00", EndTime: "09:00"}).Validate(), ErrInvalidTimeRange)
	assert.Error(t, (&Slot{StartTime: "9am", EndTime: "10:00"}).Validate())
}

func TestFindOverlap(t *testing.T) {
	existing := []*Slot{
		{ID: 1, StartTime: "08:00", EndTime: "09:00"},
		{ID: 2, StartTime: "09:00", EndTime: "10:00"},
	}

	assert.Nil(t, FindOverlap(&Slot{StartTime: "10:00", EndTime: "11:00"}, existing))
	assert.Equal(t, int64(2), FindOverlap(&Slot{StartTime: "09:30", EndTime: "10:30"}, existing).ID)
}

func TestValidateSelection(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	slots := []*Slot{
		{ID: 1, CourtID: 1, Date: date},
		{ID: 2, CourtID: 1, Date: date},
	}

	assert.NoError(t, ValidateSelection(slots, []int64{1, 2}, 1, date))
	assert.ErrorIs(t, ValidateSelection(slots[:1], []int64{1, 2}, 1, date), ErrInvalidDetails)
	assert.ErrorIs(t, ValidateSelection(slots, []int64{1, 2}, 2, date), ErrInvalidDetails)
	assert.ErrorIs(t, ValidateSelection(slots, []int64{1, 2}, 1, date.AddDate(0, 0, 1)), ErrInvalidDetails)
}
