package domain

import (
	"time"

	"github.com/google/uuid"
)

// GalleryImage represents a picture shown on the shop home page
type GalleryImage struct {
	ID        uuid.UUID
	ImageURL  string
	Title     *string
	Order     int
	CreatedAt time.Time
}
