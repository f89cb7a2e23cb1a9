package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Restaurant is a storefront customers order from.
type Restaurant struct {
	ID             uuid.UUID
	Name           string
	Address        string
	Phone          string
	Email          string
	Description    string
	ImageURL       string
	OperatingHours string
	Rating         *float64  // Nil until the restaurant has been rated.
	IsOpen         bool
	Location       orb.Point // lon/lat of the storefront; stored, not used for dispatch.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
