package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbite/internal/domain/entity"
	domainerrors "quickbite/internal/domain/errors"
	"quickbite/internal/domain/repository"
	"quickbite/internal/usecase"
)

func TestRestaurantService_MutationsRequireCatalogCapability(t *testing.T) {
	fx := newServiceFixtures()
	customer := fx.seedUser(entity.RoleCustomer, false)
	admin := fx.seedUser(entity.RoleAdmin, false)
	ctx := context.Background()

	input := usecase.CreateRestaurantInput{Name: "Blocked", Address: "nowhere"}

	_, err := fx.restaurants.Create(ctx, actorFor(customer), input)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	created, err := fx.restaurants.Create(ctx, actorFor(admin), input)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	_, err = fx.restaurants.Update(ctx, actorFor(customer), created.ID, usecase.UpdateRestaurantInput{})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = fx.restaurants.Delete(ctx, actorFor(customer), created.ID)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRestaurantService_SuperuserMayManageCatalog(t *testing.T) {
	fx := newServiceFixtures()
	superuser := fx.seedUser(entity.RoleCustomer, true)

	created, err := fx.restaurants.Create(context.Background(), actorFor(superuser), usecase.CreateRestaurantInput{
		Name:    "Bootstrap Bistro",
		Address: "1 First Street",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bootstrap Bistro", created.Name)
}

func TestRestaurantService_Update_PartialFields(t *testing.T) {
	fx := newServiceFixtures()
	admin := fx.seedUser(entity.RoleAdmin, false)
	restaurant := fx.seedRestaurant()

	rating := 4.5
	closed := false
	updated, err := fx.restaurants.Update(context.Background(), actorFor(admin), restaurant.ID, usecase.UpdateRestaurantInput{
		Rating: &rating,
		IsOpen: &closed,
	})

	require.NoError(t, err)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 4.5, *updated.Rating)
	assert.False(t, updated.IsOpen)
	assert.Equal(t, "Testaurant", updated.Name, "unset fields stay untouched")
}

func TestRestaurantService_GetAndDeleteUnknown(t *testing.T) {
	fx := newServiceFixtures()
	admin := fx.seedUser(entity.RoleAdmin, false)
	ctx := context.Background()

	_, err := fx.restaurants.Get(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)

	err = fx.restaurants.Delete(ctx, actorFor(admin), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestRestaurantService_List_NameFilter(t *testing.T) {
	fx := newServiceFixtures()
	pizza := fx.seedRestaurant()
	pizza.Name = "Pizza Palace"
	sushi := fx.seedRestaurant()
	sushi.Name = "Sushi Spot"

	out, err := fx.restaurants.List(context.Background(), usecase.ListRestaurantsInput{
		Filter: repository.RestaurantFilter{Name: "pizza"},
	})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Pizza Palace", out[0].Name)
}

func TestItemService_Create(t *testing.T) {
	fx := newServiceFixtures()
	admin := fx.seedUser(entity.RoleAdmin, false)
	customer := fx.seedUser(entity.RoleCustomer, false)
	restaurant := fx.seedRestaurant()
	ctx := context.Background()

	_, err := fx.items.Create(ctx, actorFor(customer), usecase.CreateItemInput{
		RestaurantID: restaurant.ID,
		Name:         "Burger",
		PriceCents:   500,
	})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.items.Create(ctx, actorFor(admin), usecase.CreateItemInput{
		RestaurantID: uuid.New(),
		Name:         "Orphan",
		PriceCents:   500,
	})
	require.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)

	_, err = fx.items.Create(ctx, actorFor(admin), usecase.CreateItemInput{
		RestaurantID: restaurant.ID,
		Name:         "Freebie",
		PriceCents:   -1,
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	item, err := fx.items.Create(ctx, actorFor(admin), usecase.CreateItemInput{
		RestaurantID: restaurant.ID,
		Name:         "Burger",
		PriceCents:   500,
		IsAvailable:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, restaurant.ID, item.RestaurantID)
	assert.Equal(t, int64(500), item.PriceCents)
}

func TestItemService_Update_RejectsNegativePrice(t *testing.T) {
	fx := newServiceFixtures()
	admin := fx.seedUser(entity.RoleAdmin, false)
	restaurant := fx.seedRestaurant()
	item := fx.seedItem(restaurant.ID, 500, true)

	bad := int64(-10)
	_, err := fx.items.Update(context.Background(), actorFor(admin), item.ID, usecase.UpdateItemInput{
		PriceCents: &bad,
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestItemService_List_Filters(t *testing.T) {
	fx := newServiceFixtures()
	restaurant := fx.seedRestaurant()
	other := fx.seedRestaurant()
	fx.seedItem(restaurant.ID, 300, true)
	fx.seedItem(restaurant.ID, 800, true)
	fx.seedItem(other.ID, 500, true)
	ctx := context.Background()

	minPrice := int64(400)
	out, err := fx.items.List(ctx, usecase.ListItemsInput{
		Filter: repository.ItemFilter{RestaurantID: &restaurant.ID, MinPriceCents: &minPrice},
	})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(800), out[0].PriceCents)
}

func TestItemService_Delete(t *testing.T) {
	fx := newServiceFixtures()
	admin := fx.seedUser(entity.RoleAdmin, false)
	restaurant := fx.seedRestaurant()
	item := fx.seedItem(restaurant.ID, 500, true)
	ctx := context.Background()

	require.NoError(t, fx.items.Delete(ctx, actorFor(admin), item.ID))

	_, err := fx.items.Get(ctx, item.ID)
	require.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}
