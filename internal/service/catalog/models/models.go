package models

import (
	"time"

	"github.com/m04kA/bookminton/internal/domain"
)

// Request модели

// CourtRequest запрос на создание или изменение корта
type CourtRequest struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// CreateSlotRequest запрос на создание слота
type CreateSlotRequest struct {
	CourtID   int64  `json:"courtId"`
	Date      string `json:"date"`      // "2025-06-01"
	StartTime string `json:"startTime"` // "08:00"
	EndTime   string `json:"endTime"`
}

// Response модели

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

// CourtListResponse ответ со списком кортов
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID            int64   `json:"id"`
	CourtID       int64   `json:"courtId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours float64 `json:"durationHours"`
	Reserved      bool    `json:"reserved"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// FromDomainCourt конвертирует domain модель в DTO
func FromDomainCourt(c *domain.Court) *CourtResponse {
	if c == nil {
		return nil
	}
	return &CourtResponse{
		ID:        c.ID,
		Name:      c.Name,
		Price:     c.Price,
		CreatedAt: c.CreatedAt,
	}
}

// FromDomainCourtList конвертирует список кортов в DTO
func FromDomainCourtList(courts []*domain.Court) *CourtListResponse {
	resp := &CourtListResponse{Courts: make([]CourtResponse, 0, len(courts))}
	for _, c := range courts {
		resp.Courts = append(resp.Courts, *FromDomainCourt(c))
	}
	return resp
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	if s == nil {
		return nil
	}
	return &SlotResponse{
		ID:            s.ID,
		CourtID:       s.CourtID,
		Date:          s.Date.Format(domain.DateFormat),
		StartTime:     s.StartTime.String(),
		EndTime:       s.EndTime.String(),
		DurationHours: s.DurationHours(),
		Reserved:      s.Reserved,
	}
}

// FromDomainSlotList конвертирует список слотов в DTO
func FromDomainSlotList(slots []*domain.Slot) *SlotListResponse {
	resp := &SlotListResponse{Slots: make([]SlotResponse, 0, len(slots))}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, *FromDomainSlot(s))
	}
	return resp
}
