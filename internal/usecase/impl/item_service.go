package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "quickbite/internal/delivery/context"
	"quickbite/internal/domain/authz"
	"quickbite/internal/domain/entity"
	domainerrors "quickbite/internal/domain/errors"
	"quickbite/internal/domain/repository"
	"quickbite/internal/usecase"
)

// itemService implements the ItemUsecase interface.
type itemService struct {
	itemRepo       repository.ItemRepository
	restaurantRepo repository.RestaurantRepository
	logger         *slog.Logger
}

// ItemServiceParams holds dependencies for itemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	ItemRepo       repository.ItemRepository
	RestaurantRepo repository.RestaurantRepository
	Logger         *slog.Logger
}

// NewItemService is the constructor for itemService.
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	return &itemService{
		itemRepo:       params.ItemRepo,
		restaurantRepo: params.RestaurantRepo,
		logger:         params.Logger,
	}
}

func (srv *itemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *itemService) Create(ctx context.Context, actor authz.Actor, input usecase.CreateItemInput) (*entity.Item, error) {
	if err := authz.Check(actor, authz.CapabilityManageCatalog, authz.Resource{}); err != nil {
		return nil, err
	}

	if input.PriceCents < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}

	if _, err := srv.restaurantRepo.FindByID(ctx, input.RestaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to load restaurant for item create")
	}

	item := &entity.Item{
		RestaurantID:  input.RestaurantID,
		Name:          input.Name,
		Description:   input.Description,
		PriceCents:    input.PriceCents,
		ImageURL:      input.ImageURL,
		IsAvailable:   input.IsAvailable,
		IsRecommended: input.IsRecommended,
	}

	if err := srv.itemRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}

	srv.log(ctx).Info("Item created", slog.Any("itemID", item.ID), slog.Any("restaurantID", item.RestaurantID))

	return item, nil
}

func (srv *itemService) Get(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := srv.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to load item")
	}

	return item, nil
}

func (srv *itemService) List(ctx context.Context, input usecase.ListItemsInput) ([]*entity.Item, error) {
	items, err := srv.itemRepo.List(ctx, input.Filter, input.Options.Normalize())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	return items, nil
}

func (srv *itemService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input usecase.UpdateItemInput) (*entity.Item, error) {
	if err := authz.Check(actor, authz.CapabilityManageCatalog, authz.Resource{}); err != nil {
		return nil, err
	}

	item, err := srv.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to load item for update")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.PriceCents != nil {
		if *input.PriceCents < 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
		}
		item.PriceCents = *input.PriceCents
	}
	if input.ImageURL != nil {
		item.ImageURL = *input.ImageURL
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}
	if input.IsRecommended != nil {
		item.IsRecommended = *input.IsRecommended
	}

	if err := srv.itemRepo.Update(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to update item")
	}

	srv.log(ctx).Debug("Item updated", slog.Any("itemID", item.ID))

	return item, nil
}

func (srv *itemService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if err := authz.Check(actor, authz.CapabilityManageCatalog, authz.Resource{}); err != nil {
		return err
	}

	if _, err := srv.itemRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return domainerrors.ErrItemNotFound
		}

		return errors.Wrap(err, "failed to load item for delete")
	}

	if err := srv.itemRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete item")
	}

	srv.log(ctx).Info("Item deleted", slog.Any("itemID", id))

	return nil
}
