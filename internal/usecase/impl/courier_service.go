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

// courierService implements the CourierUsecase interface.
type courierService struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	assignmentRepo repository.AssignmentRepository
	positionRepo   repository.PositionRepository
	logger         *slog.Logger
}

// CourierServiceParams holds dependencies for courierService, injected by Fx.
type CourierServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OrderRepo      repository.OrderRepository
	AssignmentRepo repository.AssignmentRepository
	PositionRepo   repository.PositionRepository
	Logger         *slog.Logger
}

// NewCourierService is the constructor for courierService.
func NewCourierService(params CourierServiceParams) usecase.CourierUsecase {
	return &courierService{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		assignmentRepo: params.AssignmentRepo,
		positionRepo:   params.PositionRepo,
		logger:         params.Logger,
	}
}

func (srv *courierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Assign attaches a courier to an order that is accepted or ready. A courier
// may self-assign; assigning anyone else requires the dispatch capability.
// The order check, the courier's workload check and the insert run in one
// transaction; the unique order key backstops concurrent assigners.
func (srv *courierService) Assign(ctx context.Context, actor authz.Actor, input usecase.AssignCourierInput) (*entity.CourierAssignment, error) {
	selfAssign := actor.Role == entity.RoleCourier && actor.ID == input.CourierID
	if !selfAssign {
		if err := authz.Check(actor, authz.CapabilityAssignCourier, authz.Resource{}); err != nil {
			return nil, err
		}
	}

	var created *entity.CourierAssignment
	err := srv.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		orderRepo := txRepo.NewOrderRepository()
		assignmentRepo := txRepo.NewAssignmentRepository()

		order, err := orderRepo.FindByID(ctx, input.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to load order for assignment")
		}

		if order.Status != entity.StatusAccepted && order.Status != entity.StatusReady {
			return domainerrors.ErrConflict.WrapMessage("order must be accepted or ready before a courier is assigned")
		}
		if order.Assignment != nil {
			return domainerrors.ErrOrderAlreadyAssigned
		}

		courier, err := txRepo.NewUserRepository().FindByID(ctx, input.CourierID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("courier does not exist")
			}

			return errors.Wrap(err, "failed to load courier for assignment")
		}
		if courier.Role != entity.RoleCourier {
			return domainerrors.ErrValidationFailed.WrapMessage("user is not a courier")
		}
		if !courier.IsActive {
			return domainerrors.ErrAccountInactive.WrapMessage("courier account is deactivated")
		}

		inFlight, err := assignmentRepo.CountInFlightByCourier(ctx, input.CourierID)
		if err != nil {
			return errors.Wrap(err, "failed to count courier workload")
		}
		if inFlight > 0 {
			return domainerrors.ErrCourierBusy
		}

		assignment := &entity.CourierAssignment{
			OrderID:    input.OrderID,
			CourierID:  input.CourierID,
			AssignedAt: time.Now(),
		}

		if err := assignmentRepo.Create(ctx, assignment); err != nil {
			return errors.Wrap(err, "failed to create assignment")
		}

		created = assignment

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Courier assigned",
		slog.Any("orderID", input.OrderID),
		slog.Any("courierID", input.CourierID),
	)

	return created, nil
}

func (srv *courierService) GetAssignment(ctx context.Context, actor authz.Actor, orderID uuid.UUID) (*entity.CourierAssignment, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order for assignment read")
	}

	if !canReadOrder(actor, order) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if order.Assignment == nil {
		return nil, domainerrors.ErrAssignmentNotFound
	}

	return order.Assignment, nil
}

// RecordPosition appends a sample to the acting courier's own trail.
func (srv *courierService) RecordPosition(ctx context.Context, actor authz.Actor, input usecase.RecordPositionInput) (*entity.CourierPosition, error) {
	if actor.Role != entity.RoleCourier {
		return nil, domainerrors.ErrForbidden.WrapMessage("only couriers report positions")
	}

	position := &entity.CourierPosition{
		CourierID:  actor.ID,
		Point:      input.Point,
		RecordedAt: time.Now(),
	}

	if err := srv.positionRepo.Create(ctx, position); err != nil {
		return nil, errors.Wrap(err, "failed to record courier position")
	}

	srv.log(ctx).Debug("Courier position recorded", slog.Any("courierID", actor.ID))

	return position, nil
}

func (srv *courierService) ListPositions(ctx context.Context, actor authz.Actor, input usecase.ListPositionsInput) ([]*entity.CourierPosition, error) {
	if err := authz.Check(actor, authz.CapabilityReadPositions, authz.Owned(input.CourierID)); err != nil {
		return nil, err
	}

	positions, err := srv.positionRepo.ListByCourier(ctx, input.CourierID, input.Options.Normalize())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courier positions")
	}

	return positions, nil
}
