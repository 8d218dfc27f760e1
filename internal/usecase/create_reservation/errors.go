package create_reservation

import "errors"

var (
	// ErrValidation возвращается при некорректных данных формы или подтверждения оплаты
	ErrValidation = errors.New("create_reservation: validation failed")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_reservation: court not found")

	// ErrUpload возвращается при ошибке загрузки подтверждения оплаты
	ErrUpload = errors.New("create_reservation: payment proof upload failed")

	// ErrSlotConflict возвращается, когда слот успели зарезервировать параллельно
	ErrSlotConflict = errors.New("create_reservation: slot already reserved")

	// ErrPersistence возвращается при ошибке сохранения бронирований
	ErrPersistence = errors.New("create_reservation: failed to persist reservation")
)

// Значения метки результата для метрики бронирований
const (
	resultCreated  = "created"
	resultConflict = "conflict"
	resultRejected = "rejected"
	resultFailed   = "failed"
)
