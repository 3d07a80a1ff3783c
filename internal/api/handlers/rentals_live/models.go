package rentals_live

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/notify"
	"github.com/m04kA/SMC-SurfShopService/internal/rentaltimer"
)

const messageTypeTick = "tick"

// LiveMessage кадр ленты, отправляется раз в тик
type LiveMessage struct {
	Type    string         `json:"type"`
	At      time.Time      `json:"at"`
	Rentals []LiveSnapshot `json:"rentals"`
	Alerts  []LiveAlert    `json:"alerts,omitempty"`
}

// LiveSnapshot показания таймера одной аренды
type LiveSnapshot struct {
	RentalID       uuid.UUID `json:"rental_id"`
	SurfboardID    uuid.UUID `json:"surfboard_id"`
	SurfboardName  string    `json:"surfboard_name"`
	RenterName     string    `json:"renter_name"`
	Status         string    `json:"status"`
	State          string    `json:"state"`
	ElapsedMinutes float64   `json:"elapsed_minutes"`
	Clock          string    `json:"clock"`
	AmountDue      float64   `json:"amount_due"`
	EstimatedTime  int       `json:"estimated_time"`
	Progress       float64   `json:"progress"`
}

// LiveAlert оповещение, которое клиент показывает как toast
type LiveAlert struct {
	RentalID      uuid.UUID             `json:"rental_id"`
	Kind          rentaltimer.AlertKind `json:"kind"`
	SurfboardName string                `json:"surfboard_name"`
	RenterName    string                `json:"renter_name"`
	Title         string                `json:"title"`
	Body          string                `json:"body"`
}

func snapshotFromTimer(s rentaltimer.Snapshot) LiveSnapshot {
	return LiveSnapshot{
		RentalID:       s.RentalID,
		SurfboardID:    s.SurfboardID,
		SurfboardName:  s.SurfboardName,
		RenterName:     s.RenterName,
		Status:         string(s.Status),
		State:          string(s.State),
		ElapsedMinutes: s.ElapsedMinutes,
		Clock:          s.Clock,
		AmountDue:      s.AmountDue.Round(2).InexactFloat64(),
		EstimatedTime:  s.EstimatedTime,
		Progress:       s.Progress,
	}
}

func alertFromTimer(s rentaltimer.Snapshot, kind rentaltimer.AlertKind) LiveAlert {
	n := notify.Notification{
		Kind:           kind,
		RentalID:       s.RentalID,
		SurfboardName:  s.SurfboardName,
		RenterName:     s.RenterName,
		ElapsedMinutes: s.ElapsedMinutes,
		EstimatedTime:  s.EstimatedTime,
		At:             s.At,
	}
	return LiveAlert{
		RentalID:      s.RentalID,
		Kind:          kind,
		SurfboardName: s.SurfboardName,
		RenterName:    s.RenterName,
		Title:         n.Title(),
		Body:          n.Body(),
	}
}
