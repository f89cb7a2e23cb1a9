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

// restaurantSortColumns is the whitelist of sortable restaurant columns.
var restaurantSortColumns = []string{"name", "rating", "created_at"}

// restaurantRepository implements the repository.RestaurantRepository interface using GORM.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (repo *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel
	if err := repo.db.WithContext(ctx).First(&restaurantM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by id")
	}

	return restaurantM.ToEntity(), nil
}

func (repo *restaurantRepository) List(ctx context.Context, filter repository.RestaurantFilter, opts repository.ListOptions) ([]*entity.Restaurant, error) {
	query := repo.db.WithContext(ctx).Model(&model.RestaurantModel{})

	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}

	sortColumn := opts.SortColumn(restaurantSortColumns, "created_at")
	var restaurantMs []model.RestaurantModel
	err := query.
		Order(sortColumn + " " + string(opts.SortOrder)).
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&restaurantMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantMs))
	for i := range restaurantMs {
		restaurants = append(restaurants, restaurantMs[i].ToEntity())
	}

	return restaurants, nil
}

func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := model.RestaurantModelFromEntity(restaurant)

	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required restaurant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	restaurant.ID = restaurantM.ID
	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

func (repo *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := model.RestaurantModelFromEntity(restaurant)

	if err := repo.db.WithContext(ctx).Save(restaurantM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required restaurant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update restaurant")
	}

	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

// Delete removes the restaurant; the cascade drops its items.
func (repo *restaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.RestaurantModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete restaurant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}
