package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"quickbite/internal/domain/entity"
)

// ErrAssignmentNotFound is returned when a courier assignment is not found.
var ErrAssignmentNotFound = errors.New("assignment not found")

// AssignmentRepository defines the standard operations for courier assignment
// persistence. The order ID is the primary key, so each order carries at most
// one assignment for its whole lifetime.
type AssignmentRepository interface {
	// FindByOrderID retrieves the assignment attached to the given order.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.CourierAssignment, error)

	// CountInFlightByCourier returns the number of assignments the courier is
	// currently working, i.e. not yet delivered.
	CountInFlightByCourier(ctx context.Context, courierID uuid.UUID) (int64, error)

	// Create persists a new assignment. The unique order key makes a second
	// assignment for the same order fail with a duplicate error.
	Create(ctx context.Context, assignment *entity.CourierAssignment) error

	// Update modifies an existing assignment, e.g. stamping pickup or delivery.
	Update(ctx context.Context, assignment *entity.CourierAssignment) error
}
