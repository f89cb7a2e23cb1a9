package entity

import (
	"time"

	"github.com/google/uuid"
)

// CourierAssignment links exactly one courier to exactly one order.
// The order ID is the primary key, which enforces the at-most-one-assignment
// invariant at the storage level.
type CourierAssignment struct {
	OrderID     uuid.UUID
	CourierID   uuid.UUID
	AssignedAt  time.Time
	PickedUpAt  *time.Time // Set when the order transitions to picked_up.
	DeliveredAt *time.Time // Set when the order transitions to done.
}

// InFlight reports whether the assignment still occupies the courier,
// i.e. the order has not been delivered yet.
func (a *CourierAssignment) InFlight() bool {
	return a != nil && a.DeliveredAt == nil
}
