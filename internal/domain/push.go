package domain

import (
	"time"

	"github.com/google/uuid"
)

// PushKeys web push encryption keys of a browser subscription
type PushKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// PushSubscription browser push endpoint registered by the dashboard
type PushSubscription struct {
	ID        uuid.UUID
	Endpoint  string
	Keys      PushKeys
	CreatedAt time.Time
}
