package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SurfboardStatus represents the availability of a surfboard
type SurfboardStatus string

const (
	SurfboardAvailable SurfboardStatus = "available"
	SurfboardRented    SurfboardStatus = "rented"
	SurfboardPaused    SurfboardStatus = "paused"
)

// Surfboard represents a board offered for rent
type Surfboard struct {
	ID         uuid.UUID
	Name       string
	ImageURL   *string
	HourlyRate decimal.Decimal
	Status     SurfboardStatus
	CreatedAt  time.Time
}

// IsAvailable returns true if a new rental can be started on the board
func (s *Surfboard) IsAvailable() bool {
	return s.Status == SurfboardAvailable
}

// SurfboardStatusFor returns the board status that mirrors a rental status
func SurfboardStatusFor(status RentalStatus) SurfboardStatus {
	switch status {
	case RentalActive:
		return SurfboardRented
	case RentalPaused:
		return SurfboardPaused
	default:
		return SurfboardAvailable
	}
}
