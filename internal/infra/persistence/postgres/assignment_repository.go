package postgres

import (
	"context"

	"quickbite/internal/domain/entity"
	domainerrors "quickbite/internal/domain/errors"
	"quickbite/internal/domain/repository"
	"quickbite/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// assignmentRepository implements the repository.AssignmentRepository interface using GORM.
type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository is the constructor for assignmentRepository.
func NewAssignmentRepository(db *gorm.DB) repository.AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (repo *assignmentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.CourierAssignment, error) {
	var assignmentM model.CourierAssignmentModel
	if err := repo.db.WithContext(ctx).First(&assignmentM, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssignmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find assignment by order id")
	}

	return assignmentM.ToEntity(), nil
}

// CountInFlightByCourier counts the courier's undelivered assignments.
func (repo *assignmentRepository) CountInFlightByCourier(ctx context.Context, courierID uuid.UUID) (int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.CourierAssignmentModel{}).
		Where("courier_id = ? AND delivered_at IS NULL", courierID).
		Count(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count in-flight assignments")
	}

	return total, nil
}

func (repo *assignmentRepository) Create(ctx context.Context, assignment *entity.CourierAssignment) error {
	assignmentM := model.AssignmentModelFromEntity(assignment)

	if err := repo.db.WithContext(ctx).Create(assignmentM).Error; err != nil {
		// The order key is the primary key, so a concurrent assign loses here.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOrderAlreadyAssigned
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("assignment references a missing order or courier")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create assignment")
	}

	return nil
}

func (repo *assignmentRepository) Update(ctx context.Context, assignment *entity.CourierAssignment) error {
	assignmentM := model.AssignmentModelFromEntity(assignment)

	if err := repo.db.WithContext(ctx).Save(assignmentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update assignment")
	}

	return nil
}
