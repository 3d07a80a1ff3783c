package update_rental

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	updateRental "github.com/m04kA/SMC-SurfShopService/internal/usecase/update_rental"
	"github.com/m04kA/SMC-SurfShopService/pkg/ptr"
)

// UpdateRentalRequest HTTP request model
type UpdateRentalRequest struct {
	Action      string   `json:"action" validate:"required,oneof=pause resume complete"`
	FinalAmount *float64 `json:"final_amount,omitempty" validate:"omitempty,gte=0"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateRentalRequest) ToUseCaseRequest(id uuid.UUID) *updateRental.Request {
	req := &updateRental.Request{
		RentalID: id,
		Action:   domain.RentalAction(r.Action),
	}
	if r.FinalAmount != nil {
		req.FinalAmount = ptr.Ptr(decimal.NewFromFloat(*r.FinalAmount))
	}
	return req
}
