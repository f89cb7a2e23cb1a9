package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"quickbite/internal/domain/authz"
	"quickbite/internal/domain/entity"
	"quickbite/internal/domain/repository"
)

// AssignCourierInput defines the data required to attach a courier to an order.
type AssignCourierInput struct {
	OrderID   uuid.UUID
	CourierID uuid.UUID
}

// RecordPositionInput is one position sample reported by a courier.
type RecordPositionInput struct {
	Point orb.Point
}

// ListPositionsInput combines the target courier and paging of a trail read.
type ListPositionsInput struct {
	CourierID uuid.UUID
	Options   repository.ListOptions
}

// CourierUsecase defines the interface for courier dispatch operations.
type CourierUsecase interface {
	// Assign attaches a courier to an accepted order. An order carries at most
	// one assignment ever, and a courier works at most one order at a time.
	Assign(ctx context.Context, actor authz.Actor, input AssignCourierInput) (*entity.CourierAssignment, error)

	// GetAssignment returns the assignment attached to the order.
	GetAssignment(ctx context.Context, actor authz.Actor, orderID uuid.UUID) (*entity.CourierAssignment, error)

	// RecordPosition appends a position sample to the acting courier's trail.
	RecordPosition(ctx context.Context, actor authz.Actor, input RecordPositionInput) (*entity.CourierPosition, error)

	// ListPositions returns a courier's position trail, newest first.
	// Couriers may read their own trail; admins may read any.
	ListPositions(ctx context.Context, actor authz.Actor, input ListPositionsInput) ([]*entity.CourierPosition, error)
}
