package usecase

import (
	"context"

	"github.com/google/uuid"

	"quickbite/internal/domain/authz"
	"quickbite/internal/domain/entity"
	"quickbite/internal/domain/repository"
)

// OrderLineInput is one requested line of a new order.
type OrderLineInput struct {
	ItemID   uuid.UUID
	Quantity int
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	RestaurantID    uuid.UUID
	DeliveryAddress string
	Lines           []OrderLineInput
}

// ListOrdersInput combines the filter and paging of an order list.
// Non-admin actors are always restricted to their own orders.
type ListOrdersInput struct {
	Status  *entity.OrderStatus
	Options repository.ListOptions
}

// OrderUsecase defines the interface for order lifecycle operations.
type OrderUsecase interface {
	// Create places an order, snapshotting current item prices into the lines
	// and computing the total from those snapshots.
	Create(ctx context.Context, actor authz.Actor, input CreateOrderInput) (*entity.Order, error)

	// Get returns one order. Non-admin actors may only read their own orders,
	// except the assigned courier who may read the order they deliver.
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Order, error)

	// List returns orders visible to the actor.
	List(ctx context.Context, actor authz.Actor, input ListOrdersInput) ([]*entity.Order, error)

	// UpdateStatus advances the order along the fulfillment state machine.
	// Which transitions an actor may request depends on their relation to
	// the order: admins may request any valid transition, the owner may
	// cancel, and the assigned courier may report pickup and delivery.
	UpdateStatus(ctx context.Context, actor authz.Actor, id uuid.UUID, next entity.OrderStatus) (*entity.Order, error)

	// Delete removes the order permanently.
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}
