// Package events рассылка уведомлений об изменениях бронирований
// Доставка best effort: ошибки публикации только логируются
package events

import (
	"context"

	"github.com/m04kA/bookminton/internal/domain"
)

// Publisher канал доставки событий
type Publisher interface {
	Publish(ctx context.Context, evt domain.BookingEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Multi публикует событие во все каналы; ошибки не прерывают рассылку
type Multi struct {
	publishers []Publisher
	logger     Logger
}

// NewMulti создает рассыльщик; nil каналы пропускаются
func NewMulti(logger Logger, publishers ...Publisher) *Multi {
	m := &Multi{logger: logger}
	for _, p := range publishers {
		if p != nil {
			m.publishers = append(m.publishers, p)
		}
	}
	return m
}

// Publish рассылает событие
func (m *Multi) Publish(ctx context.Context, evt domain.BookingEvent) error {
	for _, p := range m.publishers {
		if err := p.Publish(ctx, evt); err != nil {
			m.logger.Warn("Publish: failed to deliver event=%s booking_id=%s: %v", evt.Type, evt.BookingID, err)
		}
	}
	return nil
}
