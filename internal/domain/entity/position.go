package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// CourierPosition is one time-stamped geographic sample for a courier.
// Positions are append-only; nothing ever mutates a recorded sample.
type CourierPosition struct {
	ID         uuid.UUID
	CourierID  uuid.UUID
	Point      orb.Point // lon/lat
	RecordedAt time.Time
}
