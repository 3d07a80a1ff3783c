package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RentalStatus represents the status of a rental
type RentalStatus string

const (
	RentalActive    RentalStatus = "active"
	RentalPaused    RentalStatus = "paused"
	RentalCompleted RentalStatus = "completed"
)

// RentalAction action requested by the operator on a running rental
type RentalAction string

const (
	ActionPause    RentalAction = "pause"
	ActionResume   RentalAction = "resume"
	ActionComplete RentalAction = "complete"
)

// Rental represents one surfboard checked out to a renter for a timed, billed interval
type Rental struct {
	ID            uuid.UUID
	SurfboardID   uuid.UUID
	SurfboardName string // denormalized at start
	RenterName    string

	HourlyRate    decimal.Decimal // copied from the surfboard at start
	EstimatedTime int             // minutes

	StartTime time.Time
	EndTime   *time.Time

	// PauseTime is set if and only if Status == RentalPaused
	PauseTime *time.Time
	// TotalPausedDuration accumulated minutes of finished pause intervals
	TotalPausedDuration float64

	Status           RentalStatus
	FinalAmount      *decimal.Decimal
	NotificationSent bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the rental clock is running
func (r *Rental) IsActive() bool {
	return r.Status == RentalActive
}

// IsPaused returns true if the rental clock is frozen
func (r *Rental) IsPaused() bool {
	return r.Status == RentalPaused
}

// IsCompleted returns true if the rental is closed and immutable
func (r *Rental) IsCompleted() bool {
	return r.Status == RentalCompleted
}

// InProgress returns true if the board is still out with the renter
func (r *Rental) InProgress() bool {
	return r.Status == RentalActive || r.Status == RentalPaused
}

// CanApply returns true if the action is a valid transition from the current status
func (r *Rental) CanApply(action RentalAction) bool {
	switch action {
	case ActionPause:
		return r.Status == RentalActive
	case ActionResume:
		return r.Status == RentalPaused
	case ActionComplete:
		return r.InProgress()
	default:
		return false
	}
}

// IsValid returns true for a known action
func (a RentalAction) IsValid() bool {
	switch a {
	case ActionPause, ActionResume, ActionComplete:
		return true
	default:
		return false
	}
}

// RentalHistoryFilter фильтр истории завершённых аренд
type RentalHistoryFilter struct {
	Date  *time.Time // день начала аренды (опционально)
	Limit int
}
