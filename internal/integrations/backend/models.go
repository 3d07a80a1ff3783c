package backend

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/internal/rentaltimer"
	"github.com/m04kA/SMC-SurfShopService/pkg/ptr"
)

// Rental аренда в формате REST API
type Rental struct {
	ID                  uuid.UUID  `json:"id"`
	SurfboardID         uuid.UUID  `json:"surfboard_id"`
	SurfboardName       string     `json:"surfboard_name"`
	RenterName          string     `json:"renter_name"`
	HourlyRate          float64    `json:"hourly_rate"`
	EstimatedTime       int        `json:"estimated_time"`
	StartTime           time.Time  `json:"start_time"`
	EndTime             *time.Time `json:"end_time"`
	PauseTime           *time.Time `json:"pause_time"`
	TotalPausedDuration float64    `json:"total_paused_duration"`
	Status              string     `json:"status"`
	FinalAmount         *float64   `json:"final_amount"`
	NotificationSent    bool       `json:"notification_sent"`
}

// ToDomain конвертирует модель API в доменную модель
func (r *Rental) ToDomain() *domain.Rental {
	rental := &domain.Rental{
		ID:                  r.ID,
		SurfboardID:         r.SurfboardID,
		SurfboardName:       r.SurfboardName,
		RenterName:          r.RenterName,
		HourlyRate:          decimal.NewFromFloat(r.HourlyRate),
		EstimatedTime:       r.EstimatedTime,
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
		PauseTime:           r.PauseTime,
		TotalPausedDuration: r.TotalPausedDuration,
		Status:              domain.RentalStatus(r.Status),
		NotificationSent:    r.NotificationSent,
	}
	if r.FinalAmount != nil {
		rental.FinalAmount = ptr.Ptr(decimal.NewFromFloat(*r.FinalAmount))
	}
	return rental
}

// Alert кандидат на оповещение из /rentals/check-alerts
type Alert struct {
	RentalID      uuid.UUID             `json:"rental_id"`
	SurfboardName string                `json:"surfboard_name"`
	RenterName    string                `json:"renter_name"`
	Elapsed       float64               `json:"elapsed"`
	Estimated     int                   `json:"estimated"`
	Kind          rentaltimer.AlertKind `json:"kind"`
}
