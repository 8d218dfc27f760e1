package pgnotify

import "errors"

var (
	// ErrPublish возвращается при ошибке отправки уведомления
	ErrPublish = errors.New("pgnotify: failed to publish notification")

	// ErrListen возвращается при ошибке подписки на канал
	ErrListen = errors.New("pgnotify: failed to listen channel")
)
