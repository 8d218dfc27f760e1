package telegram

import "errors"

var (
	// ErrInternal возвращается при ошибке инициализации клиента
	ErrInternal = errors.New("telegram client: internal error")

	// ErrSend возвращается при ошибке отправки сообщения
	ErrSend = errors.New("telegram client: failed to send message")
)
