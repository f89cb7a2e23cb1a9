package usecase

import (
	"context"

	"github.com/google/uuid"

	"quickbite/internal/domain/authz"
	"quickbite/internal/domain/entity"
	"quickbite/internal/domain/repository"
)

// CreateItemInput defines the data required to create a menu item.
type CreateItemInput struct {
	RestaurantID  uuid.UUID
	Name          string
	Description   string
	PriceCents    int64
	ImageURL      string
	IsAvailable   bool
	IsRecommended bool
}

// UpdateItemInput carries the optional fields of an item update.
// Nil fields are left untouched.
type UpdateItemInput struct {
	Name          *string
	Description   *string
	PriceCents    *int64
	ImageURL      *string
	IsAvailable   *bool
	IsRecommended *bool
}

// ListItemsInput combines the filter and paging of an item list.
type ListItemsInput struct {
	Filter  repository.ItemFilter
	Options repository.ListOptions
}

// ItemUsecase defines the interface for menu item catalog operations.
// Mutations require the catalog management capability.
type ItemUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input CreateItemInput) (*entity.Item, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	List(ctx context.Context, input ListItemsInput) ([]*entity.Item, error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input UpdateItemInput) (*entity.Item, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}
