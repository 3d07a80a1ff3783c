package update_rental

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RentalID == uuid.Nil {
		return fmt.Errorf("%w: rental id is required", ErrInvalidInput)
	}

	if !req.Action.IsValid() {
		return fmt.Errorf("%w: action must be one of pause, resume, complete", ErrInvalidInput)
	}

	if req.FinalAmount != nil {
		if req.Action != domain.ActionComplete {
			return fmt.Errorf("%w: final_amount is only accepted with complete", ErrInvalidInput)
		}
		if req.FinalAmount.IsNegative() {
			return fmt.Errorf("%w: final_amount must be non-negative", ErrInvalidInput)
		}
	}

	return nil
}
