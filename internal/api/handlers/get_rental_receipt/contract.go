package get_rental_receipt

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/service/rentals/models"
)

type RentalsService interface {
	Receipt(ctx context.Context, id uuid.UUID, phone *string) (*models.ReceiptResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
