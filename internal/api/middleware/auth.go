package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/bookminton/internal/api/handlers"
	"github.com/m04kA/bookminton/internal/domain"
	"github.com/m04kA/bookminton/internal/service/auth"
)

const (
	msgInvalidToken  = "недействительный токен"
	msgUnauthorized  = "требуется авторизация"
	msgAdminRequired = "доступ только для администратора"

	bearerPrefix = "Bearer "
)

// TokenParser проверяет токен доступа и восстанавливает сессию
type TokenParser interface {
	ParseToken(ctx context.Context, token string) (*domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth разбирает заголовок Authorization и кладёт сессию в контекст
// Запрос без заголовка проходит как гостевой, с недействительным токеном получает 401
func Auth(parser TokenParser, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !strings.HasPrefix(header, bearerPrefix) {
				logger.Warn("Auth: malformed authorization header on %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			session, err := parser.ParseToken(r.Context(), strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
			if err != nil {
				if errors.Is(err, auth.ErrInvalidToken) {
					logger.Warn("Auth: rejected token on %s %s: %v", r.Method, r.URL.Path, err)
					handlers.RespondUnauthorized(w, msgInvalidToken)
					return
				}
				logger.Error("Auth: failed to verify token on %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// RequireSession пропускает только авторизованные запросы
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSession(r.Context()); !ok {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin пропускает только сессии с ролью admin
// Роль берётся из токена текущего запроса
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := GetSession(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		if !session.IsAdmin() {
			handlers.RespondForbidden(w, msgAdminRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}
