package arena

import (
	"context"
	"io"
	"time"

	"github.com/m04kA/bookminton/internal/domain"
)

// ArenaRepository интерфейс репозитория профиля арены и галереи
type ArenaRepository interface {
	GetProfile(ctx context.Context) (*domain.ArenaProfile, error)
	UpsertProfile(ctx context.Context, p *domain.ArenaProfile) (*domain.ArenaProfile, error)
	SetLogoURL(ctx context.Context, url string) error
	SetQRISURL(ctx context.Context, url string) error
	ListCarousel(ctx context.Context) ([]*domain.CarouselImage, error)
	AddCarouselImage(ctx context.Context, url string) (*domain.CarouselImage, error)
	DeleteCarouselImage(ctx context.Context, id int64) error
}

// FileStorage интерфейс хранилища файлов
type FileStorage interface {
	Upload(ctx context.Context, bucket, name string, r io.Reader, size int64, contentType string) (string, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
