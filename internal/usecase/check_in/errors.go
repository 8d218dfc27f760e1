package check_in

import "errors"

var (
	// ErrInvalidInput возвращается при пустом токене
	ErrInvalidInput = errors.New("check_in: invalid input data")

	// ErrNotFound возвращается, когда нет бронирования со статусом reserved и таким токеном
	ErrNotFound = errors.New("check_in: booking not found or already checked in")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_in: internal error")
)
