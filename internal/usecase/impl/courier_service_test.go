package impl

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbite/internal/domain/entity"
	domainerrors "quickbite/internal/domain/errors"
	"quickbite/internal/usecase"
)

func TestCourierService_Assign_SelfAssign(t *testing.T) {
	fx := newServiceFixtures()
	customer := fx.seedUser(entity.RoleCustomer, false)
	courier := fx.seedUser(entity.RoleCourier, false)
	restaurant := fx.seedRestaurant()
	order := fx.seedOrder(customer.ID, restaurant.ID, entity.StatusAccepted)

	assignment, err := fx.couriers.Assign(context.Background(), actorFor(courier), usecase.AssignCourierInput{
		OrderID:   order.ID,
		CourierID: courier.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, order.ID, assignment.OrderID)
	assert.Equal(t, courier.ID, assignment.CourierID)
	assert.False(t, assignment.AssignedAt.IsZero())
}

func TestCourierService_Assign_AdminAssignsAnyCourier(t *testing.T) {
	fx := newServiceFixtures()
	admin := fx.seedUser(entity.RoleAdmin, false)
	customer := fx.seedUser(entity.RoleCustomer, false)
	courier := fx.seedUser(entity.RoleCourier, false)
	restaurant := fx.seedRestaurant()
	order := fx.seedOrder(customer.ID, restaurant.ID, entity.StatusReady)

	assignment, err := fx.couriers.Assign(context.Background(), actorFor(admin), usecase.AssignCourierInput{
		OrderID:   order.ID,
		CourierID: courier.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, courier.ID, assignment.CourierID)
}

func TestCourierService_Assign_CustomerCannotAssign(t *testing.T) {
	fx := newServiceFixtures()
	customer := fx.seedUser(entity.RoleCustomer, false)
	courier := fx.seedUser(entity.RoleCourier, false)
	restaurant := fx.seedRestaurant()
	order := fx.seedOrder(customer.ID, restaurant.ID, entity.StatusAccepted)

	_, err := fx.couriers.Assign(context.Background(), actorFor(customer), usecase.AssignCourierInput{
		OrderID:   order.ID,
		CourierID: courier.ID,
	})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCourierService_Assign_OrderMustBeAcceptedOrReady(t *testing.T) {
	fx := newServiceFixtures()
	customer := fx.seedUser(entity.RoleCustomer, false)
	courier := fx.seedUser(entity.RoleCourier, false)
	restaurant := fx.seedRestaurant()
	order := fx.seedOrder(customer.ID, restaurant.ID, entity.StatusPlaced)

	_, err := fx.couriers.Assign(context.Background(), actorFor(courier), usecase.AssignCourierInput{
		OrderID:   order.ID,
		CourierID: courier.ID,
	})

	require.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestCourierService_Assign_OrderAlreadyAssigned(t *testing.T) {
	fx := newServiceFixtures()
	customer := fx.seedUser(entity.RoleCustomer, false)
	first := fx.seedUser(entity.RoleCourier, false)
	second := fx.seedUser(entity.RoleCourier, false)
	restaurant := fx.seedRestaurant()
	order := fx.seedOrder(customer.ID, restaurant.ID, entity.StatusAccepted)
	fx.seedAssignment(order.ID, first.ID)

	_, err := fx.couriers.Assign(context.Background(), actorFor(second), usecase.AssignCourierInput{
		OrderID:   order.ID,
		CourierID: second.ID,
	})

	require.ErrorIs(t, err, domainerrors.ErrOrderAlreadyAssigned)
}

func TestCourierService_Assign_CourierBusy(t *testing.T) {
	fx := newServiceFixtures()
	customer := fx.seedUser(entity.RoleCustomer, false)
	courier := fx.seedUser(entity.RoleCourier, false)
	restaurant := fx.seedRestaurant()
	inFlight := fx.seedOrder(customer.ID, restaurant.ID, entity.StatusPickedUp)
	fx.seedAssignment(inFlight.ID, courier.ID)
	next := fx.seedOrder(customer.ID, restaurant.ID, entity.StatusAccepted)

	_, err := fx.couriers.Assign(context.Background(), actorFor(courier), usecase.AssignCourierInput{
		OrderID:   next.ID,
		CourierID: courier.ID,
	})

	require.ErrorIs(t, err, domainerrors.ErrCourierBusy)
}

func TestCourierService_Assign_DeliveredAssignmentFreesCourier(t *testing.T) {
	fx := newServiceFixtures()
	customer := fx.seedUser(entity.RoleCustomer, false)
	courier := fx.seedUser(entity.RoleCourier, false)
	restaurant := fx.seedRestaurant()
	done := fx.seedOrder(customer.ID, restaurant.ID, entity.StatusDone)
	finished := fx.seedAssignment(done.ID, courier.ID)
	now := finished.AssignedAt
	finished.DeliveredAt = &now

	next := fx.seedOrder(customer.ID, restaurant.ID, entity.StatusAccepted)

	_, err := fx.couriers.Assign(context.Background(), actorFor(courier), usecase.AssignCourierInput{
		OrderID:   next.ID,
		CourierID: courier.ID,
	})

	require.NoError(t, err)
}

func TestCourierService_Assign_TargetMustBeActiveCourier(t *testing.T) {
	fx := newServiceFixtures()
	admin := fx.seedUser(entity.RoleAdmin, false)
	customer := fx.seedUser(entity.RoleCustomer, false)
	restaurant := fx.seedRestaurant()
	ctx := context.Background()

	order := fx.seedOrder(customer.ID, restaurant.ID, entity.StatusAccepted)
	_, err := fx.couriers.Assign(ctx, actorFor(admin), usecase.AssignCourierInput{
		OrderID:   order.ID,
		CourierID: customer.ID,
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed, "target is not a courier")

	lazy := fx.seedUser(entity.RoleCourier, false)
	lazy.IsActive = false
	_, err = fx.couriers.Assign(ctx, actorFor(admin), usecase.AssignCourierInput{
		OrderID:   order.ID,
		CourierID: lazy.ID,
	})
	require.ErrorIs(t, err, domainerrors.ErrAccountInactive, "target is deactivated")
}

func TestCourierService_GetAssignment(t *testing.T) {
	fx := newServiceFixtures()
	customer := fx.seedUser(entity.RoleCustomer, false)
	stranger := fx.seedUser(entity.RoleCustomer, false)
	courier := fx.seedUser(entity.RoleCourier, false)
	restaurant := fx.seedRestaurant()
	order := fx.seedOrder(customer.ID, restaurant.ID, entity.StatusAccepted)
	ctx := context.Background()

	_, err := fx.couriers.GetAssignment(ctx, actorFor(customer), order.ID)
	require.ErrorIs(t, err, domainerrors.ErrAssignmentNotFound, "no assignment yet")

	fx.seedAssignment(order.ID, courier.ID)

	assignment, err := fx.couriers.GetAssignment(ctx, actorFor(customer), order.ID)
	require.NoError(t, err)
	assert.Equal(t, courier.ID, assignment.CourierID)

	_, err = fx.couriers.GetAssignment(ctx, actorFor(stranger), order.ID)
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound, "unrelated users cannot see the order")
}

func TestCourierService_RecordPosition(t *testing.T) {
	fx := newServiceFixtures()
	courier := fx.seedUser(entity.RoleCourier, false)
	customer := fx.seedUser(entity.RoleCustomer, false)
	ctx := context.Background()

	position, err := fx.couriers.RecordPosition(ctx, actorFor(courier), usecase.RecordPositionInput{
		Point: orb.Point{13.404954, 52.520008},
	})
	require.NoError(t, err)
	assert.Equal(t, courier.ID, position.CourierID)
	assert.False(t, position.RecordedAt.IsZero())

	_, err = fx.couriers.RecordPosition(ctx, actorFor(customer), usecase.RecordPositionInput{
		Point: orb.Point{13.404954, 52.520008},
	})
	require.ErrorIs(t, err, domainerrors.ErrForbidden, "only couriers report positions")
}

func TestCourierService_ListPositions(t *testing.T) {
	fx := newServiceFixtures()
	courier := fx.seedUser(entity.RoleCourier, false)
	other := fx.seedUser(entity.RoleCourier, false)
	admin := fx.seedUser(entity.RoleAdmin, false)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := fx.couriers.RecordPosition(ctx, actorFor(courier), usecase.RecordPositionInput{
			Point: orb.Point{13.4, 52.5},
		})
		require.NoError(t, err)
	}

	own, err := fx.couriers.ListPositions(ctx, actorFor(courier), usecase.ListPositionsInput{CourierID: courier.ID})
	require.NoError(t, err)
	assert.Len(t, own, 3)

	_, err = fx.couriers.ListPositions(ctx, actorFor(other), usecase.ListPositionsInput{CourierID: courier.ID})
	require.ErrorIs(t, err, domainerrors.ErrForbidden, "couriers read only their own trail")

	all, err := fx.couriers.ListPositions(ctx, actorFor(admin), usecase.ListPositionsInput{CourierID: courier.ID})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
