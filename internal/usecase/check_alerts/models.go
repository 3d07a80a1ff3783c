package check_alerts

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/rentaltimer"
)

// Alert аренда, дошедшая до порога оповещения
type Alert struct {
	RentalID      uuid.UUID             `json:"rental_id"`
	SurfboardName string                `json:"surfboard_name"`
	RenterName    string                `json:"renter_name"`
	Elapsed       float64               `json:"elapsed"`   // минуты
	Estimated     int                   `json:"estimated"` // минуты
	Kind          rentaltimer.AlertKind `json:"kind"`
}
