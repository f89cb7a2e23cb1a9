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

// positionRepository implements the repository.PositionRepository interface using GORM.
type positionRepository struct {
	db *gorm.DB
}

// NewPositionRepository is the constructor for positionRepository.
func NewPositionRepository(db *gorm.DB) repository.PositionRepository {
	return &positionRepository{db: db}
}

func (repo *positionRepository) Create(ctx context.Context, position *entity.CourierPosition) error {
	positionM := model.PositionModelFromEntity(position)

	if err := repo.db.WithContext(ctx).Create(positionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("position references a missing courier")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record position")
	}

	position.ID = positionM.ID

	return nil
}

// ListByCourier returns the courier's trail newest first.
func (repo *positionRepository) ListByCourier(ctx context.Context, courierID uuid.UUID, opts repository.ListOptions) ([]*entity.CourierPosition, error) {
	var positionMs []model.CourierPositionModel
	err := repo.db.WithContext(ctx).
		Where("courier_id = ?", courierID).
		Order("recorded_at desc").
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&positionMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courier positions")
	}

	positions := make([]*entity.CourierPosition, 0, len(positionMs))
	for i := range positionMs {
		positions = append(positions, positionMs[i].ToEntity())
	}

	return positions, nil
}
