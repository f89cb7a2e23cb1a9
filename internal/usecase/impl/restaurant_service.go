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

// restaurantService implements the RestaurantUsecase interface.
type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	logger         *slog.Logger
}

// RestaurantServiceParams holds dependencies for restaurantService, injected by Fx.
type RestaurantServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	Logger         *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(params RestaurantServiceParams) usecase.RestaurantUsecase {
	return &restaurantService{
		restaurantRepo: params.RestaurantRepo,
		logger:         params.Logger,
	}
}

func (srv *restaurantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *restaurantService) Create(ctx context.Context, actor authz.Actor, input usecase.CreateRestaurantInput) (*entity.Restaurant, error) {
	if err := authz.Check(actor, authz.CapabilityManageCatalog, authz.Resource{}); err != nil {
		return nil, err
	}

	restaurant := &entity.Restaurant{
		Name:           input.Name,
		Address:        input.Address,
		Phone:          input.Phone,
		Email:          input.Email,
		Description:    input.Description,
		ImageURL:       input.ImageURL,
		OperatingHours: input.OperatingHours,
		IsOpen:         input.IsOpen,
		Location:       input.Location,
	}

	if err := srv.restaurantRepo.Create(ctx, restaurant); err != nil {
		return nil, errors.Wrap(err, "failed to create restaurant")
	}

	srv.log(ctx).Info("Restaurant created", slog.Any("restaurantID", restaurant.ID), slog.String("name", restaurant.Name))

	return restaurant, nil
}

func (srv *restaurantService) Get(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to load restaurant")
	}

	return restaurant, nil
}

func (srv *restaurantService) List(ctx context.Context, input usecase.ListRestaurantsInput) ([]*entity.Restaurant, error) {
	restaurants, err := srv.restaurantRepo.List(ctx, input.Filter, input.Options.Normalize())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return restaurants, nil
}

func (srv *restaurantService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input usecase.UpdateRestaurantInput) (*entity.Restaurant, error) {
	if err := authz.Check(actor, authz.CapabilityManageCatalog, authz.Resource{}); err != nil {
		return nil, err
	}

	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to load restaurant for update")
	}

	if input.Name != nil {
		restaurant.Name = *input.Name
	}
	if input.Address != nil {
		restaurant.Address = *input.Address
	}
	if input.Phone != nil {
		restaurant.Phone = *input.Phone
	}
	if input.Email != nil {
		restaurant.Email = *input.Email
	}
	if input.Description != nil {
		restaurant.Description = *input.Description
	}
	if input.ImageURL != nil {
		restaurant.ImageURL = *input.ImageURL
	}
	if input.OperatingHours != nil {
		restaurant.OperatingHours = *input.OperatingHours
	}
	if input.Rating != nil {
		restaurant.Rating = input.Rating
	}
	if input.IsOpen != nil {
		restaurant.IsOpen = *input.IsOpen
	}
	if input.Location != nil {
		restaurant.Location = *input.Location
	}

	if err := srv.restaurantRepo.Update(ctx, restaurant); err != nil {
		return nil, errors.Wrap(err, "failed to update restaurant")
	}

	srv.log(ctx).Debug("Restaurant updated", slog.Any("restaurantID", restaurant.ID))

	return restaurant, nil
}

func (srv *restaurantService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if err := authz.Check(actor, authz.CapabilityManageCatalog, authz.Resource{}); err != nil {
		return err
	}

	if _, err := srv.restaurantRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return domainerrors.ErrRestaurantNotFound
		}

		return errors.Wrap(err, "failed to load restaurant for delete")
	}

	if err := srv.restaurantRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete restaurant")
	}

	srv.log(ctx).Info("Restaurant deleted", slog.Any("restaurantID", id))

	return nil
}
