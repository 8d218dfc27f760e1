package domain

import "errors"

var (
	// ErrInvalidDetails возвращается при некорректных данных формы бронирования
	ErrInvalidDetails = errors.New("domain: invalid reservation details")

	// ErrInvalidProof возвращается при некорректном файле подтверждения оплаты
	ErrInvalidProof = errors.New("domain: invalid payment proof")

	// ErrFormStep возвращается при действии, недопустимом на текущем шаге формы
	ErrFormStep = errors.New("domain: action not allowed at current form step")

	// ErrInvalidTimeRange возвращается, когда начало слота не раньше конца
	ErrInvalidTimeRange = errors.New("domain: start time must be before end time")
)
