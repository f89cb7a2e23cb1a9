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

// itemSortColumns is the whitelist of sortable item columns.
var itemSortColumns = []string{"name", "price_cents", "created_at"}

// itemRepository implements the repository.ItemRepository interface using GORM.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (repo *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var itemM model.ItemModel
	if err := repo.db.WithContext(ctx).First(&itemM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by id")
	}

	return itemM.ToEntity(), nil
}

func (repo *itemRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Item, error) {
	var itemMs []model.ItemModel
	if err := repo.db.WithContext(ctx).Find(&itemMs, "id IN ?", ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find items by ids")
	}

	items := make([]*entity.Item, 0, len(itemMs))
	for i := range itemMs {
		items = append(items, itemMs[i].ToEntity())
	}

	return items, nil
}

func (repo *itemRepository) List(ctx context.Context, filter repository.ItemFilter, opts repository.ListOptions) ([]*entity.Item, error) {
	query := repo.db.WithContext(ctx).Model(&model.ItemModel{})

	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.RestaurantID != nil {
		query = query.Where("restaurant_id = ?", *filter.RestaurantID)
	}
	if filter.MinPriceCents != nil {
		query = query.Where("price_cents >= ?", *filter.MinPriceCents)
	}
	if filter.MaxPriceCents != nil {
		query = query.Where("price_cents <= ?", *filter.MaxPriceCents)
	}

	sortColumn := opts.SortColumn(itemSortColumns, "created_at")
	var itemMs []model.ItemModel
	err := query.
		Order(sortColumn + " " + string(opts.SortOrder)).
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&itemMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	items := make([]*entity.Item, 0, len(itemMs))
	for i := range itemMs {
		items = append(items, itemMs[i].ToEntity())
	}

	return items, nil
}

func (repo *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemM := model.ItemModelFromEntity(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRestaurantNotFound.WrapMessage("restaurant does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	itemM := model.ItemModelFromEntity(item)

	if err := repo.db.WithContext(ctx).Save(itemM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update item")
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ItemModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}
