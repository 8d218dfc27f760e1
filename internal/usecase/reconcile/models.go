package reconcile

// Result итог одного прохода сверки
type Result struct {
	Released int64 // слоты с флагом без бронирования, освобождены
	Reserved int64 // слоты с бронированием без флага, помечены занятыми
}
