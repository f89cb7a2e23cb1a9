package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"quickbite/internal/domain/entity"
)

// ErrItemNotFound is returned when an item is not found.
var ErrItemNotFound = errors.New("item not found")

// ItemFilter holds the optional predicates of an item list query.
type ItemFilter struct {
	// Name filters by case-insensitive substring match.
	Name string
	// RestaurantID restricts to one restaurant's menu when non-nil.
	RestaurantID *uuid.UUID
	// MinPriceCents / MaxPriceCents bound the price range when non-nil.
	MinPriceCents *int64
	MaxPriceCents *int64
}

// ItemRepository defines the standard operations for menu item persistence.
type ItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// FindByIDs retrieves several items at once; missing IDs are simply absent
	// from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Item, error)

	// List returns items matching the filter, paged and sorted per opts.
	List(ctx context.Context, filter ItemFilter, opts ListOptions) ([]*entity.Item, error)

	Create(ctx context.Context, item *entity.Item) error

	Update(ctx context.Context, item *entity.Item) error

	Delete(ctx context.Context, id uuid.UUID) error
}
