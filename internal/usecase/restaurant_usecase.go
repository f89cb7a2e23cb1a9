package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"quickbite/internal/domain/authz"
	"quickbite/internal/domain/entity"
	"quickbite/internal/domain/repository"
)

// CreateRestaurantInput defines the data required to create a restaurant.
type CreateRestaurantInput struct {
	Name           string
	Address        string
	Phone          string
	Email          string
	Description    string
	ImageURL       string
	OperatingHours string
	IsOpen         bool
	Location       orb.Point
}

// UpdateRestaurantInput carries the optional fields of a restaurant update.
// Nil fields are left untouched.
type UpdateRestaurantInput struct {
	Name           *string
	Address        *string
	Phone          *string
	Email          *string
	Description    *string
	ImageURL       *string
	OperatingHours *string
	Rating         *float64
	IsOpen         *bool
	Location       *orb.Point
}

// ListRestaurantsInput combines the filter and paging of a restaurant list.
type ListRestaurantsInput struct {
	Filter  repository.RestaurantFilter
	Options repository.ListOptions
}

// RestaurantUsecase defines the interface for restaurant catalog operations.
// Mutations require the catalog management capability.
type RestaurantUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input CreateRestaurantInput) (*entity.Restaurant, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	List(ctx context.Context, input ListRestaurantsInput) ([]*entity.Restaurant, error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input UpdateRestaurantInput) (*entity.Restaurant, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}
