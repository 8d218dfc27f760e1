package slots

import (
	"context"

	"github.com/m04kA/bookminton/internal/service/catalog/models"
)

type CatalogService interface {
	ListSlots(ctx context.Context, courtID int64, date string) (*models.SlotListResponse, error)
	CreateSlot(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error)
	DeleteSlot(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
