package domain

import "github.com/m04kA/bookminton/pkg/types"

// Quote итог по выбранным слотам
type Quote struct {
	TotalHours float64
	TotalPrice float64
}

// DurationHours длительность интервала в часах по времени суток, дробная часть сохраняется
func DurationHours(start, end types.TimeString) float64 {
	return float64(end.Minutes()-start.Minutes()) / 60
}

// CalculateQuote суммирует длительность слотов и умножает на почасовую цену корта
func CalculateQuote(slots []*Slot, hourlyPrice int64) Quote {
	var hours float64
	for _, s := range slots {
		hours += s.DurationHours()
	}
	return Quote{
		TotalHours: hours,
		TotalPrice: hours * float64(hourlyPrice),
	}
}
