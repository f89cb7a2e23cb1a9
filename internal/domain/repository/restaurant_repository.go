package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"quickbite/internal/domain/entity"
)

// ErrRestaurantNotFound is returned when a restaurant is not found.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantFilter holds the optional predicates of a restaurant list query.
type RestaurantFilter struct {
	// Name filters by case-insensitive substring match.
	Name string
}

// RestaurantRepository defines the standard operations for restaurant persistence.
type RestaurantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// List returns restaurants matching the filter, paged and sorted per opts.
	List(ctx context.Context, filter RestaurantFilter, opts ListOptions) ([]*entity.Restaurant, error)

	Create(ctx context.Context, restaurant *entity.Restaurant) error

	Update(ctx context.Context, restaurant *entity.Restaurant) error

	// Delete removes the restaurant permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
