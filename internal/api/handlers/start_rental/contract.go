package start_rental

import (
	"context"

	"github.com/m04kA/SMC-SurfShopService/internal/service/rentals/models"
	startRental "github.com/m04kA/SMC-SurfShopService/internal/usecase/start_rental"
)

type StartRentalUseCase interface {
	Execute(ctx context.Context, req *startRental.Request) (*models.RentalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
