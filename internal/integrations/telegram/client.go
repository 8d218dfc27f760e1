// Package telegram уведомления персонала о бронированиях в Telegram чат
package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/m04kA/bookminton/internal/domain"
)

// Sender часть tgbotapi.BotAPI, нужная клиенту
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client отправляет уведомления в чат персонала
type Client struct {
	sender Sender
	chatID int64
	log    Logger
}

// NewClient авторизует бота по токену
func NewClient(token string, chatID int64, log Logger) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to authorize bot: %v", ErrInternal, err)
	}

	log.Info("Telegram bot authorized as %s", bot.Self.UserName)
	return NewClientWithSender(bot, chatID, log), nil
}

// NewClientWithSender создает клиент поверх готового отправителя
func NewClientWithSender(sender Sender, chatID int64, log Logger) *Client {
	return &Client{sender: sender, chatID: chatID, log: log}
}

// Notify отправляет уведомление о событии
func (c *Client) Notify(evt domain.BookingEvent) error {
	msg := tgbotapi.NewMessage(c.chatID, FormatEvent(evt))

	if _, err := c.sender.Send(msg); err != nil {
		return fmt.Errorf("%w: chat_id=%d, event=%s: %v", ErrSend, c.chatID, evt.Type, err)
	}

	return nil
}

// Run пересылает события из канала до его закрытия или отмены контекста
// Ошибки отправки не прерывают работу
func (c *Client) Run(ctx context.Context, events <-chan domain.BookingEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			if err := c.Notify(evt); err != nil {
				c.log.Error("Telegram notification failed, booking_id=%s: %v", evt.BookingID, err)
				continue
			}
			c.log.Info("Telegram notification sent, event=%s, booking_id=%s", evt.Type, evt.BookingID)
		}
	}
}
