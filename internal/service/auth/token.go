package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/m04kA/bookminton/internal/domain"
)

// Claims полезная нагрузка токена доступа
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	jwt.RegisteredClaims
}

func newClaims(u *domain.User, now time.Time, ttl time.Duration) Claims {
	return Claims{
		Email: u.Email,
		Role:  string(u.Metadata.Role),
		Name:  u.Metadata.FullName,
		Phone: u.Metadata.Phone,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

func (c *Claims) session() (*domain.Session, error) {
	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, c.Subject)
	}
	if c.ID == "" || c.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: jti and exp are required", ErrInvalidToken)
	}

	role := domain.UserRole(c.Role)
	if role != domain.RoleAdmin {
		role = domain.RoleCustomer
	}

	return &domain.Session{
		UserID:    userID,
		Email:     c.Email,
		FullName:  c.Name,
		Phone:     c.Phone,
		Role:      role,
		TokenID:   c.ID,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}
