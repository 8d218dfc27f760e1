// Package middleware HTTP middleware API: авторизация и метрики
package middleware

import (
	"context"

	"github.com/m04kA/bookminton/internal/domain"
)

type contextKey string

const sessionKey contextKey = "session"

// WithSession кладёт сессию в контекст запроса
func WithSession(ctx context.Context, s *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// GetSession достаёт сессию из контекста запроса
// ok == false для гостя
func GetSession(ctx context.Context) (*domain.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*domain.Session)
	return s, ok && s != nil
}
