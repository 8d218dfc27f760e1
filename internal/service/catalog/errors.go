package catalog

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog: invalid input data")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("catalog: court not found")

	// ErrCourtInUse возвращается при удалении корта с бронированиями
	ErrCourtInUse = errors.New("catalog: court has bookings")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("catalog: slot not found")

	// ErrSlotOverlap возвращается, когда новый слот пересекается с существующим
	ErrSlotOverlap = errors.New("catalog: slot overlaps existing slot")

	// ErrSlotReserved возвращается при удалении зарезервированного слота
	ErrSlotReserved = errors.New("catalog: slot is reserved")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
