package update_rental

import (
	"context"

	"github.com/m04kA/SMC-SurfShopService/internal/service/rentals/models"
	updateRental "github.com/m04kA/SMC-SurfShopService/internal/usecase/update_rental"
)

type UpdateRentalUseCase interface {
	Execute(ctx context.Context, req *updateRental.Request) (*models.RentalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
