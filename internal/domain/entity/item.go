package entity

import (
	"time"

	"github.com/google/uuid"
)

// Item is a menu entry belonging to exactly one restaurant.
// Prices are integer minor-currency units (cents).
type Item struct {
	ID            uuid.UUID
	RestaurantID  uuid.UUID
	Name          string
	Description   string
	PriceCents    int64 // Always >= 0.
	ImageURL      string
	IsAvailable   bool
	IsRecommended bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
