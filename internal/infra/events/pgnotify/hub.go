package pgnotify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/bookminton/internal/domain"
)

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second

	subscriberBuffer = 16
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Hub слушает канал Postgres и раздаёт события подписчикам процесса
// Медленный подписчик теряет события, остальные не блокируются
type Hub struct {
	dsn     string
	channel string
	logger  Logger

	mu     sync.RWMutex
	subs   map[int]chan domain.BookingEvent
	nextID int
}

// NewHub создает хаб уведомлений
func NewHub(dsn, channel string, logger Logger) *Hub {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Hub{
		dsn:     dsn,
		channel: channel,
		logger:  logger,
		subs:    make(map[int]chan domain.BookingEvent),
	}
}

// Subscribe регистрирует подписчика; возвращённая функция отписывает и закрывает канал
func (h *Hub) Subscribe() (<-chan domain.BookingEvent, func()) {
	ch := make(chan domain.BookingEvent, subscriberBuffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Run слушает канал до отмены контекста
func (h *Hub) Run(ctx context.Context) error {
	listener := pq.NewListener(h.dsn, minReconnectInterval, maxReconnectInterval, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			h.logger.Warn("Hub: listener event=%d: %v", ev, err)
		}
	})
	defer listener.Close()

	if err := listener.Listen(h.channel); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrListen, h.channel, err)
	}
	h.logger.Info("Hub: listening channel=%s", h.channel)

	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := listener.Ping(); err != nil {
					h.logger.Warn("Hub: ping failed: %v", err)
				}
			}
		}
	}()

	h.Consume(ctx, listener.Notify)
	return nil
}

// Consume раздаёт уведомления из канала до отмены контекста или закрытия канала
func (h *Hub) Consume(ctx context.Context, notifications <-chan *pq.Notification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-notifications:
			if !ok {
				return
			}
			// nil приходит после переподключения
			if n == nil {
				h.logger.Info("Hub: listener reconnected channel=%s", h.channel)
				continue
			}

			var evt domain.BookingEvent
			if err := json.Unmarshal([]byte(n.Extra), &evt); err != nil {
				h.logger.Warn("Hub: malformed payload channel=%s: %v", n.Channel, err)
				continue
			}
			h.broadcast(evt)
		}
	}
}

func (h *Hub) broadcast(evt domain.BookingEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subs {
		select {
		case ch <- evt:
		default:
			h.logger.Warn("Hub: subscriber=%d is slow, event=%s dropped", id, evt.Type)
		}
	}
}
