package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore отозванные токены (выход из системы) до истечения их срока
type RevocationStore struct {
	client *redis.Client
}

// NewRevocationStore создает хранилище отозванных токенов
func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

func revokedKey(tokenID string) string {
	return "revoked:" + tokenID
}

// Revoke помечает токен отозванным на ttl
// Токен с истёкшим сроком не сохраняется
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, revokedKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("%w: Revoke - %v", ErrRedis, err)
	}

	return nil
}

// IsRevoked проверяет, отозван ли токен
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: IsRevoked - %v", ErrRedis, err)
	}
	return n > 0, nil
}
