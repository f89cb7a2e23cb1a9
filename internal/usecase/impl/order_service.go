package impl

import (
	"context"
	"log/slog"
	"time"

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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	restaurantRepo repository.RestaurantRepository
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OrderRepo      repository.OrderRepository
	RestaurantRepo repository.RestaurantRepository
	Logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		restaurantRepo: params.RestaurantRepo,
		logger:         params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create places an order. Item prices are read and snapshotted inside one
// transaction so the stored total always equals the sum of its lines.
func (srv *orderService) Create(ctx context.Context, actor authz.Actor, input usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Lines) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order requires at least one item")
	}
	for _, line := range input.Lines {
		if line.Quantity < 1 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("item quantity must be at least 1")
		}
	}

	if _, err := srv.restaurantRepo.FindByID(ctx, input.RestaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to load restaurant for order create")
	}

	var created *entity.Order
	err := srv.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		itemRepo := txRepo.NewItemRepository()

		ids := make([]uuid.UUID, 0, len(input.Lines))
		for _, line := range input.Lines {
			ids = append(ids, line.ItemID)
		}

		items, err := itemRepo.FindByIDs(ctx, ids)
		if err != nil {
			return errors.Wrap(err, "failed to load items for order create")
		}

		byID := make(map[uuid.UUID]*entity.Item, len(items))
		for _, item := range items {
			byID[item.ID] = item
		}

		order := &entity.Order{
			CustomerID:      actor.ID,
			RestaurantID:    input.RestaurantID,
			DeliveryAddress: input.DeliveryAddress,
			Status:          entity.StatusPlaced,
		}

		for _, line := range input.Lines {
			item, ok := byID[line.ItemID]
			if !ok {
				return domainerrors.ErrItemNotFound.WrapMessage("item " + line.ItemID.String() + " does not exist")
			}
			if item.RestaurantID != input.RestaurantID {
				return domainerrors.ErrValidationFailed.WrapMessage("item " + line.ItemID.String() + " does not belong to the restaurant")
			}
			if !item.IsAvailable {
				return domainerrors.ErrItemUnavailable.WrapMessage("item " + item.Name + " is currently unavailable")
			}

			order.Items = append(order.Items, entity.OrderItem{
				ItemID:           item.ID,
				Quantity:         line.Quantity,
				PriceAtTimeCents: item.PriceCents,
			})
			order.TotalCents += int64(line.Quantity) * item.PriceCents
		}

		if err := txRepo.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		created = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to place order", slog.Any("userID", actor.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", created.ID),
		slog.Any("userID", actor.ID),
		slog.Int64("totalCents", created.TotalCents),
	)

	return created, nil
}

// canRead reports whether the actor may see the order.
func canReadOrder(actor authz.Actor, order *entity.Order) bool {
	if authz.Can(actor, authz.CapabilityReadAllOrders, authz.Resource{}) {
		return true
	}
	if order.CustomerID == actor.ID {
		return true
	}

	return order.Assignment != nil && order.Assignment.CourierID == actor.ID
}

func (srv *orderService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canReadOrder(actor, order) {
		// Hide existence from unrelated users.
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

func (srv *orderService) List(ctx context.Context, actor authz.Actor, input usecase.ListOrdersInput) ([]*entity.Order, error) {
	filter := repository.OrderFilter{Status: input.Status}
	if !authz.Can(actor, authz.CapabilityReadAllOrders, authz.Resource{}) {
		customerID := actor.ID
		filter.CustomerID = &customerID
	}

	orders, err := srv.orderRepo.List(ctx, filter, input.Options.Normalize())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateStatus advances the order along the fulfillment state machine and
// stamps the assignment when a courier reports pickup or delivery.
func (srv *orderService) UpdateStatus(ctx context.Context, actor authz.Actor, id uuid.UUID, next entity.OrderStatus) (*entity.Order, error) {
	if !next.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status " + string(next))
	}

	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		orderRepo := txRepo.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to load order for status update")
		}

		if !canReadOrder(actor, order) {
			return domainerrors.ErrOrderNotFound
		}
		if err := checkTransitionAllowed(actor, order, next); err != nil {
			return err
		}

		if !order.Status.CanTransition(next) {
			return domainerrors.ErrInvalidTransition.WrapMessage(
				"cannot move order from " + string(order.Status) + " to " + string(next))
		}

		if err := orderRepo.UpdateStatus(ctx, order.ID, next); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		if order.Assignment != nil {
			now := time.Now()
			switch next {
			case entity.StatusPickedUp:
				order.Assignment.PickedUpAt = &now
			case entity.StatusDone:
				order.Assignment.DeliveredAt = &now
			}
			if next == entity.StatusPickedUp || next == entity.StatusDone {
				if err := txRepo.NewAssignmentRepository().Update(ctx, order.Assignment); err != nil {
					return errors.Wrap(err, "failed to stamp courier assignment")
				}
			}
		}

		order.Status = next
		updated = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status updated", slog.Any("orderID", id), slog.String("status", string(next)))

	return updated, nil
}

// checkTransitionAllowed applies the actor rules: admins may request any
// transition, the owner may cancel, the assigned courier reports pickup and
// delivery.
func checkTransitionAllowed(actor authz.Actor, order *entity.Order, next entity.OrderStatus) error {
	if actor.IsAdmin() {
		return nil
	}

	if order.CustomerID == actor.ID && next == entity.StatusCancelled {
		return nil
	}

	courierOnOrder := order.Assignment != nil && order.Assignment.CourierID == actor.ID
	if courierOnOrder && (next == entity.StatusPickedUp || next == entity.StatusDone) {
		return nil
	}

	return domainerrors.ErrForbidden.WrapMessage("not allowed to move order to " + string(next))
}

func (srv *orderService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	order, err := srv.findOrder(ctx, id)
	if err != nil {
		return err
	}

	if err := authz.Check(actor, authz.CapabilityDeleteOrder, authz.Owned(order.CustomerID)); err != nil {
		return err
	}

	if err := srv.orderRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	srv.log(ctx).Info("Order deleted", slog.Any("orderID", id), slog.Any("actorID", actor.ID))

	return nil
}

func (srv *orderService) findOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	return order, nil
}
