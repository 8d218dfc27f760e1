package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/bookminton/internal/domain"
)

// generationTTL срок жизни счётчика поколений, продлевается при каждой инвалидации
const generationTTL = 24 * time.Hour

// AvailabilityCache кэш статусов слотов корта на дату
//
// Каждая пара корт+дата имеет счётчик поколений. Invalidate увеличивает счётчик,
// а значения хранятся под ключом поколения, прочитанного до обращения к БД.
// Запись, начатая до инвалидации, попадает в устаревшее поколение и больше не читается.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAvailabilityCache создает кэш доступности
func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func generationKey(courtID int64, date time.Time) string {
	return fmt.Sprintf("availability:gen:%d:%s", courtID, date.Format(domain.DateFormat))
}

func availabilityKey(courtID int64, date time.Time, generation int64) string {
	return fmt.Sprintf("availability:%d:%s:%d", courtID, date.Format(domain.DateFormat), generation)
}

// Get возвращает закэшированную доступность и текущее поколение
// found = false при промахе, поколение передаётся в Set после чтения из БД
func (c *AvailabilityCache) Get(ctx context.Context, courtID int64, date time.Time) ([]domain.SlotAvailability, int64, bool, error) {
	generation, err := c.client.Get(ctx, generationKey(courtID, date)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, false, fmt.Errorf("%w: Get - generation: %v", ErrRedis, err)
	}

	val, err := c.client.Get(ctx, availabilityKey(courtID, date, generation)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, generation, false, nil
	}
	if err != nil {
		return nil, 0, false, fmt.Errorf("%w: Get - %v", ErrRedis, err)
	}

	var items []domain.SlotAvailability
	if err := json.Unmarshal(val, &items); err != nil {
		return nil, generation, false, fmt.Errorf("%w: Get - %v", ErrDecode, err)
	}

	return items, generation, true, nil
}

// Set сохраняет доступность под поколением, полученным из Get
func (c *AvailabilityCache) Set(ctx context.Context, courtID int64, date time.Time, generation int64, items []domain.SlotAvailability) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal: %v", ErrDecode, err)
	}

	if err := c.client.Set(ctx, availabilityKey(courtID, date, generation), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - %v", ErrRedis, err)
	}

	return nil
}

// Invalidate переводит корт на дату в новое поколение, прежние значения больше не читаются
func (c *AvailabilityCache) Invalidate(ctx context.Context, courtID int64, date time.Time) error {
	key := generationKey(courtID, date)

	if err := c.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - %v", ErrRedis, err)
	}
	if err := c.client.Expire(ctx, key, generationTTL).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - expire: %v", ErrRedis, err)
	}

	return nil
}
