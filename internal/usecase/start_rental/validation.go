package start_rental

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SurfboardID == uuid.Nil {
		return fmt.Errorf("%w: surfboard_id is required", ErrInvalidInput)
	}

	req.RenterName = strings.TrimSpace(req.RenterName)
	if req.RenterName == "" {
		return fmt.Errorf("%w: renter_name is required", ErrInvalidInput)
	}
	if len([]rune(req.RenterName)) > domain.MaxRenterNameLength {
		return fmt.Errorf("%w: renter_name must be at most %d characters", ErrInvalidInput, domain.MaxRenterNameLength)
	}

	if req.EstimatedTime < domain.MinEstimatedTime || req.EstimatedTime > domain.MaxEstimatedTime {
		return fmt.Errorf("%w: estimated_time must be between %d and %d minutes",
			ErrInvalidInput, domain.MinEstimatedTime, domain.MaxEstimatedTime)
	}

	return nil
}
