package repository

import (
	"context"

	"github.com/google/uuid"

	"quickbite/internal/domain/entity"
)

// PositionRepository defines the standard operations for courier position
// persistence. Positions are append-only.
type PositionRepository interface {
	// Create appends a position sample to the courier's trail.
	Create(ctx context.Context, position *entity.CourierPosition) error

	// ListByCourier returns the courier's positions newest first, paged per opts.
	ListByCourier(ctx context.Context, courierID uuid.UUID, opts ListOptions) ([]*entity.CourierPosition, error)
}
