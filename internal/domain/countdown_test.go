package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionCountdown(t *testing.T) {
	end := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		now       time.Time
		wantLabel string
		wantEnded bool
	}{
		{name: "hour left", now: end.Add(-time.Hour), wantLabel: "60m 0s"},
		{name: "seconds truncated", now: end.Add(-(90*time.Second + 400*time.Millisecond)), wantLabel: "1m 30s"},
		{name: "exactly at end", now: end, wantLabel: SessionEndedLabel, wantEnded: true},
		{name: "after end", now: end.Add(time.Minute), wantLabel: SessionEndedLabel, wantEnded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewSessionCountdown(end, tt.now)
			assert.Equal(t, tt.wantLabel, c.Label())
			assert.Equal(t, tt.wantEnded, c.Ended)
		})
	}
}
