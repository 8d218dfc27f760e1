package models

import (
	"time"

	"github.com/m04kA/bookminton/internal/domain"
)

// Request модели

// SignUpRequest запрос на регистрацию
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// SignInRequest запрос на вход
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response модели

// UserResponse данные зарегистрированного пользователя
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionResponse данные текущей сессии
type SessionResponse struct {
	UserID    int64     `json:"userId"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// TokenResponse выданный токен доступа
type TokenResponse struct {
	AccessToken string          `json:"accessToken"`
	TokenType   string          `json:"tokenType"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	Session     SessionResponse `json:"session"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.Metadata.FullName,
		Phone:     u.Metadata.Phone,
		Role:      string(u.Metadata.Role),
		CreatedAt: u.CreatedAt,
	}
}

// FromSession конвертирует сессию в DTO
func FromSession(s *domain.Session) *SessionResponse {
	if s == nil {
		return nil
	}
	return &SessionResponse{
		UserID:    s.UserID,
		Email:     s.Email,
		FullName:  s.FullName,
		Phone:     s.Phone,
		Role:      string(s.Role),
		ExpiresAt: s.ExpiresAt,
	}
}
