package models

import (
	"time"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/internal/receipt"
	"github.com/m04kA/SMC-SurfShopService/internal/rentaltimer"
	"github.com/m04kA/SMC-SurfShopService/pkg/ptr"
)

// RentalResponse аренда в формате API
type RentalResponse struct {
	ID                  string     `json:"id"`
	SurfboardID         string     `json:"surfboard_id"`
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
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// LiveRentalResponse аренда с показаниями таймера на момент ответа
type LiveRentalResponse struct {
	RentalResponse
	ElapsedMinutes float64 `json:"elapsed_minutes"`
	Clock          string  `json:"clock"`
	AmountDue      float64 `json:"amount_due"`
	State          string  `json:"state"`
	Progress       float64 `json:"progress"`
}

// ReceiptResponse чек аренды с готовым сообщением
type ReceiptResponse struct {
	RentalID       string    `json:"rental_id"`
	RenterName     string    `json:"renter_name"`
	SurfboardName  string    `json:"surfboard_name"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	ElapsedMinutes float64   `json:"elapsed_minutes"`
	Clock          string    `json:"clock"`
	Duration       string    `json:"duration"`
	Amount         float64   `json:"amount"`
	Final          bool      `json:"final"`
	Message        string    `json:"message"`
	WhatsAppURL    string    `json:"whatsapp_url"`
}

// FromDomain конвертирует domain модель в DTO
func FromDomain(r *domain.Rental) *RentalResponse {
	if r == nil {
		return nil
	}
	resp := &RentalResponse{
		ID:                  r.ID.String(),
		SurfboardID:         r.SurfboardID.String(),
		SurfboardName:       r.SurfboardName,
		RenterName:          r.RenterName,
		HourlyRate:          r.HourlyRate.InexactFloat64(),
		EstimatedTime:       r.EstimatedTime,
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
		PauseTime:           r.PauseTime,
		TotalPausedDuration: r.TotalPausedDuration,
		Status:              string(r.Status),
		NotificationSent:    r.NotificationSent,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
	if r.FinalAmount != nil {
		resp.FinalAmount = ptr.Ptr(r.FinalAmount.InexactFloat64())
	}
	return resp
}

// FromDomainList конвертирует список аренд
func FromDomainList(rentals []*domain.Rental) []RentalResponse {
	result := make([]RentalResponse, 0, len(rentals))
	for _, r := range rentals {
		result = append(result, *FromDomain(r))
	}
	return result
}

// LiveFromDomain добавляет к аренде показания таймера на момент now
func LiveFromDomain(r *domain.Rental, now time.Time) *LiveRentalResponse {
	snap := rentaltimer.TakeSnapshot(r, now)
	return &LiveRentalResponse{
		RentalResponse: *FromDomain(r),
		ElapsedMinutes: snap.ElapsedMinutes,
		Clock:          snap.Clock,
		AmountDue:      snap.AmountDue.Round(2).InexactFloat64(),
		State:          string(snap.State),
		Progress:       snap.Progress,
	}
}

// ReceiptFromDomain конвертирует чек в DTO
func ReceiptFromDomain(rc *receipt.Receipt, message, whatsAppURL string) *ReceiptResponse {
	return &ReceiptResponse{
		RentalID:       rc.RentalID.String(),
		RenterName:     rc.RenterName,
		SurfboardName:  rc.SurfboardName,
		StartTime:      rc.StartTime,
		EndTime:        rc.EndTime,
		ElapsedMinutes: rc.ElapsedMinutes,
		Clock:          rc.Clock,
		Duration:       rc.Duration,
		Amount:         rc.Amount.InexactFloat64(),
		Final:          rc.Final,
		Message:        message,
		WhatsAppURL:    whatsAppURL,
	}
}
