package domain

import "time"

// Court корт арены с почасовой ценой
type Court struct {
	ID        int64
	Name      string
	Price     int64 // цена за час
	CreatedAt time.Time
}
