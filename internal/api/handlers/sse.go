package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SSEStream поток server-sent events поверх ResponseWriter
type SSEStream struct {
	w  http.ResponseWriter
	rc *http.ResponseController
}

// StartSSE пишет заголовки потока и снимает дедлайн записи сервера
func StartSSE(w http.ResponseWriter) *SSEStream {
	rc := http.NewResponseController(w)
	_ = rc.SetWriteDeadline(time.Time{})

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	stream := &SSEStream{w: w, rc: rc}
	_ = rc.Flush()
	return stream
}

// Send пишет событие с JSON данными и сбрасывает буфер
func (s *SSEStream) Send(event string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("sse marshal: %w", err)
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return fmt.Errorf("sse write: %w", err)
	}
	return s.flush()
}

// Ping пишет комментарий, чтобы прокси не закрывали соединение
func (s *SSEStream) Ping() error {
	if _, err := fmt.Fprint(s.w, ": ping\n\n"); err != nil {
		return fmt.Errorf("sse write: %w", err)
	}
	return s.flush()
}

func (s *SSEStream) flush() error {
	if err := s.rc.Flush(); err != nil {
		return fmt.Errorf("sse flush: %w", err)
	}
	return nil
}
