package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbite/internal/domain/entity"
	domainerrors "quickbite/internal/domain/errors"
	"quickbite/internal/usecase"
)

func TestOrderService_Create_SnapshotsPricesAndTotal(t *testing.T) {
	fx := newServiceFixtures()
	customer := fx.seedUser(entity.RoleCustomer, false)
	restaurant := fx.seedRestaurant()
	burger := fx.seedItem(restaurant.ID, 500, true)
	fries := fx.seedItem(restaurant.ID, 250, true)

	order, err := fx.orders.Create(context.Background(), actorFor(customer), usecase.CreateOrderInput{
		RestaurantID:    restaurant.ID,
		DeliveryAddress: "3 Hungry Lane",
		Lines: []usecase.OrderLineInput{
			{ItemID: burger.ID, Quantity: 2},
			{ItemID: fries.ID, Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusPlaced, order.Status)
	assert.Equal(t, customer.ID, order.CustomerID)
	assert.Equal(t, int64(2*500+250), order.TotalCents)
	require.Len(t, order.Items, 2)
	assert.Equal(t, int64(500), order.Items[0].PriceAtTimeCents)

	// Later price changes must not affect the stored snapshot.
	burger.PriceCents = 900
	stored := fx.store.orders[order.ID]
	assert.Equal(t, int64(500), stored.Items[0].PriceAtTimeCents)
	assert.Equal(t, int64(1250), stored.TotalCents)
}

func TestOrderService_Create_Validation(t *testing.T) {
	fx := newServiceFixtures()
	customer := fx.seedUser(entity.RoleCustomer, false)
	restaurant := fx.seedRestaurant()
	other := fx.seedRestaurant()
	available := fx.seedItem(restaurant.ID, 500, true)
	unavailable := fx.seedItem(restaurant.ID, 500, false)
	foreign := fx.seedItem(other.ID, 500, true)
	ctx := context.Background()
	actor := actorFor(customer)

	_, err := fx.orders.Create(ctx, actor, usecase.CreateOrderInput{
		RestaurantID: restaurant.ID,
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed, "empty order")

	_, err = fx.orders.Create(ctx, actor, usecase.CreateOrderInput{
		RestaurantID: restaurant.ID,
		Lines:        []usecase.OrderLineInput{{ItemID: available.ID, Quantity: 0}},
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed, "zero quantity")

	_, err = fx.orders.Create(ctx, actor, usecase.CreateOrderInput{
		RestaurantID: uuid.New(),
		Lines:        []usecase.OrderLineInput{{ItemID: available.ID, Quantity: 1}},
	})
	require.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound, "unknown restaurant")

	_, err = fx.orders.Create(ctx, actor, usecase.CreateOrderInput{
		RestaurantID: restaurant.ID,
		Lines:        []usecase.OrderLineInput{{ItemID: uuid.New(), Quantity: 1}},
	})
	require.ErrorIs(t, err, domainerrors.ErrItemNotFound, "unknown item")

	_, err = fx.orders.Create(ctx, actor, usecase.CreateOrderInput{
		RestaurantID: restaurant.ID,
		Lines:        []usecase.OrderLineInput{{ItemID: foreign.ID, Quantity: 1}},
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed, "item from another restaurant")

	_, err = fx.orders.Create(ctx, actor, usecase.CreateOrderInput{
		RestaurantID: restaurant.ID,
		Lines:        []usecase.OrderLineInput{{ItemID: unavailable.ID, Quantity: 1}},
	})
	require.ErrorIs(t, err, domainerrors.ErrItemUnavailable, "unavailable item")
}

func TestOrderService_Get_HidesOrdersFromUnrelatedUsers(t *testing.T) {
	fx := newServiceFixtures()
	owner := fx.seedUser(entity.RoleCustomer, false)
	stranger := fx.seedUser(entity.RoleCustomer, false)
	admin := fx.seedUser(entity.RoleAdmin, false)
	courier := fx.seedUser(entity.RoleCourier, false)
	restaurant := fx.seedRestaurant()
	order := fx.seedOrder(owner.ID, restaurant.ID, entity.StatusPlaced)
	ctx := context.Background()

	_, err := fx.orders.Get(ctx, actorFor(owner), order.ID)
	require.NoError(t, err)

	_, err = fx.orders.Get(ctx, actorFor(admin), order.ID)
	require.NoError(t, err)

	_, err = fx.orders.Get(ctx, actorFor(stranger), order.ID)
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound, "existence is hidden, not forbidden")

	// The assigned courier may read the order they deliver.
	fx.seedAssignment(order.ID, courier.ID)
	_, err = fx.orders.Get(ctx, actorFor(courier), order.ID)
	require.NoError(t, err)
}

func TestOrderService_List_RestrictsNonAdminsToOwnOrders(t *testing.T) {
	fx := newServiceFixtures()
	alice := fx.seedUser(entity.RoleCustomer, false)
	bob := fx.seedUser(entity.RoleCustomer, false)
	admin := fx.seedUser(entity.RoleAdmin, false)
	restaurant := fx.seedRestaurant()
	fx.seedOrder(alice.ID, restaurant.ID, entity.StatusPlaced)
	fx.seedOrder(bob.ID, restaurant.ID, entity.StatusPlaced)
	ctx := context.Background()

	mine, err := fx.orders.List(ctx, actorFor(alice), usecase.ListOrdersInput{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, alice.ID, mine[0].CustomerID)

	all, err := fx.orders.List(ctx, actorFor(admin), usecase.ListOrdersInput{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestOrderService_List_StatusFilter(t *testing.T) {
	fx := newServiceFixtures()
	admin := fx.seedUser(entity.RoleAdmin, false)
	restaurant := fx.seedRestaurant()
	customer := fx.seedUser(entity.RoleCustomer, false)
	fx.seedOrder(customer.ID, restaurant.ID, entity.StatusPlaced)
	fx.seedOrder(customer.ID, restaurant.ID, entity.StatusDone)

	status := entity.StatusDone
	orders, err := fx.orders.List(context.Background(), actorFor(admin), usecase.ListOrdersInput{Status: &status})

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, entity.StatusDone, orders[0].Status)
}

func TestOrderService_UpdateStatus_ActorRules(t *testing.T) {
	fx := newServiceFixtures()
	owner := fx.seedUser(entity.RoleCustomer, false)
	admin := fx.seedUser(entity.RoleAdmin, false)
	restaurant := fx.seedRestaurant()
	ctx := context.Background()

	// The owner may cancel but not accept their own order.
	order := fx.seedOrder(owner.ID, restaurant.ID, entity.StatusPlaced)
	_, err := fx.orders.UpdateStatus(ctx, actorFor(owner), order.ID, entity.StatusAccepted)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	updated, err := fx.orders.UpdateStatus(ctx, actorFor(owner), order.ID, entity.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, updated.Status)

	// Admins drive the fulfillment path.
	order = fx.seedOrder(owner.ID, restaurant.ID, entity.StatusPlaced)
	updated, err = fx.orders.UpdateStatus(ctx, actorFor(admin), order.ID, entity.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAccepted, updated.Status)
}

func TestOrderService_UpdateStatus_RejectsInvalidTransition(t *testing.T) {
	fx := newServiceFixtures()
	admin := fx.seedUser(entity.RoleAdmin, false)
	customer := fx.seedUser(entity.RoleCustomer, false)
	restaurant := fx.seedRestaurant()
	order := fx.seedOrder(customer.ID, restaurant.ID, entity.StatusPlaced)

	_, err := fx.orders.UpdateStatus(context.Background(), actorFor(admin), order.ID, entity.StatusDone)

	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestOrderService_UpdateStatus_CourierStampsAssignment(t *testing.T) {
	fx := newServiceFixtures()
	customer := fx.seedUser(entity.RoleCustomer, false)
	courier := fx.seedUser(entity.RoleCourier, false)
	restaurant := fx.seedRestaurant()
	order := fx.seedOrder(customer.ID, restaurant.ID, entity.StatusReady)
	fx.seedAssignment(order.ID, courier.ID)
	ctx := context.Background()

	updated, err := fx.orders.UpdateStatus(ctx, actorFor(courier), order.ID, entity.StatusPickedUp)
	require.NoError(t, err)
	require.NotNil(t, updated.Assignment.PickedUpAt)
	assert.Nil(t, updated.Assignment.DeliveredAt)

	updated, err = fx.orders.UpdateStatus(ctx, actorFor(courier), order.ID, entity.StatusDone)
	require.NoError(t, err)
	require.NotNil(t, updated.Assignment.DeliveredAt)
}

func TestOrderService_UpdateStatus_CourierCannotCancel(t *testing.T) {
	fx := newServiceFixtures()
	customer := fx.seedUser(entity.RoleCustomer, false)
	courier := fx.seedUser(entity.RoleCourier, false)
	restaurant := fx.seedRestaurant()
	order := fx.seedOrder(customer.ID, restaurant.ID, entity.StatusAccepted)
	fx.seedAssignment(order.ID, courier.ID)

	_, err := fx.orders.UpdateStatus(context.Background(), actorFor(courier), order.ID, entity.StatusCancelled)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_Delete_OwnerAndAdminOnly(t *testing.T) {
	fx := newServiceFixtures()
	owner := fx.seedUser(entity.RoleCustomer, false)
	stranger := fx.seedUser(entity.RoleCustomer, false)
	restaurant := fx.seedRestaurant()
	order := fx.seedOrder(owner.ID, restaurant.ID, entity.StatusPlaced)
	ctx := context.Background()

	err := fx.orders.Delete(ctx, actorFor(stranger), order.ID)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = fx.orders.Delete(ctx, actorFor(owner), order.ID)
	require.NoError(t, err)

	// Hard delete: the record is gone for everyone afterward.
	_, err = fx.orders.Get(ctx, actorFor(owner), order.ID)
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
