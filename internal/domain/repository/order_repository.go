package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"quickbite/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter holds the optional predicates of an order list query.
type OrderFilter struct {
	// CustomerID restricts to one customer's orders when non-nil.
	CustomerID *uuid.UUID
	// Status restricts to orders currently in the given status when non-nil.
	Status *entity.OrderStatus
}

// OrderRepository defines the standard operations for order persistence.
// Orders are always loaded with their line items and assignment, if any.
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns orders matching the filter, paged and sorted per opts.
	List(ctx context.Context, filter OrderFilter, opts ListOptions) ([]*entity.Order, error)

	// Create persists the order together with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// UpdateStatus moves the order to the given status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// Delete removes the order and its line items permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
