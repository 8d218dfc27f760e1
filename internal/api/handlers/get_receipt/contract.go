package get_receipt

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/bookminton/internal/domain"
)

type ReceiptService interface {
	GetReceipt(ctx context.Context, reservationID uuid.UUID) (*domain.Receipt, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
