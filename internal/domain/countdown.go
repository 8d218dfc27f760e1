package domain

import (
	"fmt"
	"time"
)

// SessionEndedLabel подпись завершённой сессии
const SessionEndedLabel = "ended"

// SessionCountdown остаток времени игровой сессии с точностью до секунды
type SessionCountdown struct {
	Remaining time.Duration
	Ended     bool
}

// NewSessionCountdown считает остаток до end относительно now
func NewSessionCountdown(end, now time.Time) SessionCountdown {
	remaining := end.Sub(now).Truncate(time.Second)
	if remaining <= 0 {
		return SessionCountdown{Ended: true}
	}
	return SessionCountdown{Remaining: remaining}
}

// Label форматирует остаток как "<m>m <s>s" или "ended"
func (c SessionCountdown) Label() string {
	if c.Ended {
		return SessionEndedLabel
	}
	total := int(c.Remaining / time.Second)
	return fmt.Sprintf("%dm %ds", total/60, total%60)
}
