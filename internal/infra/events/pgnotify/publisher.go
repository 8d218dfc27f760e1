// Package pgnotify уведомления об изменениях бронирований через Postgres LISTEN/NOTIFY
package pgnotify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/bookminton/internal/domain"
	"github.com/m04kA/bookminton/pkg/dbmetrics"
)

// DefaultChannel канал уведомлений по умолчанию
const DefaultChannel = "bookings_changes"

// Publisher отправляет события через pg_notify
type Publisher struct {
	db      dbmetrics.DBExecutor
	channel string
}

// NewPublisher создает издателя уведомлений
func NewPublisher(db dbmetrics.DBExecutor, channel string) *Publisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Publisher{db: db, channel: channel}
}

// Publish отправляет событие в канал
func (p *Publisher) Publish(ctx context.Context, evt domain.BookingEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrPublish, err)
	}

	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", p.channel, string(payload)); err != nil {
		return fmt.Errorf("%w: exec: %v", ErrPublish, err)
	}

	return nil
}
