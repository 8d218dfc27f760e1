package courts

import (
	"context"

	"github.com/m04kA/bookminton/internal/service/catalog/models"
)

type CatalogService interface {
	ListCourts(ctx context.Context) (*models.CourtListResponse, error)
	CreateCourt(ctx context.Context, req *models.CourtRequest) (*models.CourtResponse, error)
	UpdateCourt(ctx context.Context, id int64, req *models.CourtRequest) (*models.CourtResponse, error)
	DeleteCourt(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
