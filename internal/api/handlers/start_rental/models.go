package start_rental

import (
	"github.com/google/uuid"

	startRental "github.com/m04kA/SMC-SurfShopService/internal/usecase/start_rental"
)

// StartRentalRequest HTTP request model
type StartRentalRequest struct {
	SurfboardID   string `json:"surfboard_id" validate:"required,uuid"`
	RenterName    string `json:"renter_name" validate:"required,max=100"`
	EstimatedTime int    `json:"estimated_time" validate:"min=1,max=1440"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *StartRentalRequest) ToUseCaseRequest() (*startRental.Request, error) {
	id, err := uuid.Parse(r.SurfboardID)
	if err != nil {
		return nil, err
	}
	return &startRental.Request{
		SurfboardID:   id,
		RenterName:    r.RenterName,
		EstimatedTime: r.EstimatedTime,
	}, nil
}
