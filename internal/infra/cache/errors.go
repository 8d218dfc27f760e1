package cache

import "errors"

var (
	// ErrRedis возвращается при ошибке обращения к Redis
	ErrRedis = errors.New("cache: redis request failed")

	// ErrDecode возвращается, если закэшированное значение не удалось разобрать
	ErrDecode = errors.New("cache: failed to decode cached value")
)
