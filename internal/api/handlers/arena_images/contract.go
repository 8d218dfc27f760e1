package arena_images

import (
	"context"

	"github.com/m04kA/bookminton/internal/service/arena/models"
)

type ArenaService interface {
	UploadLogo(ctx context.Context, img models.ImageUpload) (*models.ImageURLResponse, error)
	UploadQRIS(ctx context.Context, img models.ImageUpload) (*models.ImageURLResponse, error)
	AddCarouselImage(ctx context.Context, img models.ImageUpload) (*models.CarouselImageResponse, error)
	DeleteCarouselImage(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
