package domain

import (
	"time"

	"github.com/google/uuid"
)

// User shop operator allowed to manage rentals and the catalog
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
