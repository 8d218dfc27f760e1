package domain

import "time"

// UserRole роль пользователя
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
)

// UserMetadata метаданные пользователя, задаваемые при регистрации
type UserMetadata struct {
	FullName string   `json:"full_name"`
	Phone    string   `json:"phone"`
	Role     UserRole `json:"role"`
}

// User учётная запись
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Metadata     UserMetadata
	CreatedAt    time.Time
}

// Session контекст авторизованного запроса, восстановленный из токена
type Session struct {
	UserID    int64
	Email     string
	FullName  string
	Phone     string
	Role      UserRole
	TokenID   string
	ExpiresAt time.Time
}

// IsAdmin проверяет роль администратора
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
