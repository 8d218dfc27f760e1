package models

import (
	"time"

	"github.com/m04kA/bookminton/internal/domain"
)

// Request модели

// UpdateProfileRequest запрос на обновление профиля арены
// Все поля опциональны - обновляются только переданные значения
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	BankInfo *string `json:"bankInfo,omitempty"`
}

// ImageUpload загружаемое изображение (логотип, QRIS, галерея)
type ImageUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Response модели

// CarouselImageResponse изображение галереи
type CarouselImageResponse struct {
	ID        int64     `json:"id"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// ArenaResponse профиль арены с галереей
type ArenaResponse struct {
	Name      string                  `json:"name"`
	Address   string                  `json:"address"`
	LogoURL   string                  `json:"logoUrl"`
	BankInfo  string                  `json:"bankInfo"`
	QRISURL   string                  `json:"qrisUrl"`
	UpdatedAt *time.Time              `json:"updatedAt,omitempty"`
	Carousel  []CarouselImageResponse `json:"carousel"`
}

// ImageURLResponse ответ с адресом загруженного изображения
type ImageURLResponse struct {
	URL string `json:"url"`
}

// ApplyTo применяет переданные поля к профилю
func (r *UpdateProfileRequest) ApplyTo(p *domain.ArenaProfile) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Address != nil {
		p.Address = *r.Address
	}
	if r.BankInfo != nil {
		p.BankInfo = *r.BankInfo
	}
}

// FromDomainCarouselImage конвертирует изображение галереи в DTO
func FromDomainCarouselImage(img *domain.CarouselImage) *CarouselImageResponse {
	if img == nil {
		return nil
	}
	return &CarouselImageResponse{
		ID:        img.ID,
		ImageURL:  img.ImageURL,
		CreatedAt: img.CreatedAt,
	}
}

// FromDomainArena конвертирует профиль и галерею в DTO
func FromDomainArena(p *domain.ArenaProfile, carousel []*domain.CarouselImage) *ArenaResponse {
	resp := &ArenaResponse{
		Name:     p.Name,
		Address:  p.Address,
		LogoURL:  p.LogoURL,
		BankInfo: p.BankInfo,
		QRISURL:  p.QRISURL,
		Carousel: make([]CarouselImageResponse, 0, len(carousel)),
	}

	if !p.UpdatedAt.IsZero() {
		updatedAt := p.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	for _, img := range carousel {
		resp.Carousel = append(resp.Carousel, *FromDomainCarouselImage(img))
	}

	return resp
}
