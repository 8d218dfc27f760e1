package arena

import "errors"

var (
	// ErrImageNotFound возвращается, когда изображение галереи не найдено
	ErrImageNotFound = errors.New("arena: image not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("arena: invalid input data")

	// ErrUpload возвращается, когда не удалось сохранить файл
	ErrUpload = errors.New("arena: upload failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("arena: internal error")
)
