package postgres

import (
	"context"

	"parfum/internal/domain/entity"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/domain/repository"
	"parfum/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// inventoryRepository implements the repository.InventoryRepository interface using GORM.
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

// FindAll retrieves every inventory row with perfume and brand preloaded.
func (repo *inventoryRepository) FindAll(ctx context.Context) ([]*entity.Inventory, error) {
	var inventoryModels []*model.InventoryModel
	if err := repo.db.WithContext(ctx).
		Preload("Perfume").
		Preload("Perfume.Brand").
		Find(&inventoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all inventory")
	}

	return toInventoryDomainSlice(inventoryModels), nil
}

// FindByID retrieves a single inventory row by its unique ID.
func (repo *inventoryRepository) FindByID(ctx context.Context, id uint) (*entity.Inventory, error) {
	var inventoryM model.InventoryModel
	if err := repo.db.WithContext(ctx).
		Preload("Perfume").
		Preload("Perfume.Brand").
		First(&inventoryM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInventoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory by id")
	}

	return toInventoryDomain(&inventoryM), nil
}

// FindByPerfumeID retrieves all inventory rows belonging to a perfume.
func (repo *inventoryRepository) FindByPerfumeID(ctx context.Context, perfumeID uint) ([]*entity.Inventory, error) {
	var inventoryModels []*model.InventoryModel
	if err := repo.db.WithContext(ctx).
		Where("perfume_id = ?", perfumeID).
		Find(&inventoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find inventory by perfume id")
	}

	return toInventoryDomainSlice(inventoryModels), nil
}

// Create persists a new inventory row.
func (repo *inventoryRepository) Create(ctx context.Context, inventory *entity.Inventory) error {
	inventoryM := fromInventoryDomain(inventory)

	if err := repo.db.WithContext(ctx).Create(inventoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInventoryAlreadyExists.WrapMessage("inventory row for this perfume and size already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPerfumeNotFound.WrapMessage("inventory references an unknown perfume")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required inventory information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create inventory")
	}

	inventory.ID = inventoryM.ID
	inventory.CreatedAt = inventoryM.CreatedAt
	inventory.UpdatedAt = inventoryM.UpdatedAt

	return nil
}

// Update modifies size, price and stock of an existing row.
func (repo *inventoryRepository) Update(ctx context.Context, inventory *entity.Inventory) error {
	updates := map[string]any{
		"price": inventory.Price,
		"stock": inventory.Stock,
	}
	if inventory.Size != "" {
		updates["size"] = string(inventory.Size)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.InventoryModel{}).
		Where("id = ?", inventory.ID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrInventoryAlreadyExists.WrapMessage("inventory row for this perfume and size already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update inventory")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInventoryNotFound
	}

	return nil
}

// UpdateStock sets the stock of a row to an absolute quantity.
func (repo *inventoryRepository) UpdateStock(ctx context.Context, id uint, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InventoryModel{}).
		Where("id = ?", id).
		Update("stock", quantity)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInventoryNotFound
	}

	return nil
}

// Delete removes an inventory row by ID.
func (repo *inventoryRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.InventoryModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete inventory")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInventoryNotFound
	}

	return nil
}

// Search retrieves inventory rows matching the given filters.
// All filters are conjunctive; price bounds are inclusive.
func (repo *inventoryRepository) Search(ctx context.Context, filters repository.InventorySearchFilters) ([]*entity.Inventory, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.InventoryModel{}).
		Joins("JOIN perfumes ON perfumes.id = inventory.perfume_id").
		Joins("JOIN brands ON brands.id = perfumes.brand_id").
		Preload("Perfume").
		Preload("Perfume.Brand")

	if filters.Query != "" {
		pattern := "%" + filters.Query + "%"
		query = query.Where("perfumes.name ILIKE ? OR brands.name ILIKE ?", pattern, pattern)
	}
	if filters.Size != "" {
		query = query.Where("inventory.size = ?", string(filters.Size))
	}
	if filters.MinPrice != nil {
		query = query.Where("inventory.price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("inventory.price <= ?", *filters.MaxPrice)
	}
	if filters.InStock {
		query = query.Where("inventory.stock > 0")
	}

	var inventoryModels []*model.InventoryModel
	if err := query.Find(&inventoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search inventory")
	}

	return toInventoryDomainSlice(inventoryModels), nil
}

// --- Mapper Functions ---

// toInventoryDomain converts a GORM InventoryModel to a domain Inventory entity.
func toInventoryDomain(data *model.InventoryModel) *entity.Inventory {
	if data == nil {
		return nil
	}

	return &entity.Inventory{
		ID:        data.ID,
		PerfumeID: data.PerfumeID,
		Perfume:   toPerfumeDomain(data.Perfume),
		Size:      entity.Size(data.Size),
		Price:     data.Price,
		Stock:     data.Stock,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toInventoryDomainSlice(models []*model.InventoryModel) []*entity.Inventory {
	inventory := make([]*entity.Inventory, 0, len(models))
	for _, inventoryM := range models {
		inventory = append(inventory, toInventoryDomain(inventoryM))
	}

	return inventory
}

// fromInventoryDomain converts a domain Inventory entity to a GORM InventoryModel for persistence.
func fromInventoryDomain(data *entity.Inventory) *model.InventoryModel {
	if data == nil {
		return nil
	}

	return &model.InventoryModel{
		ID:        data.ID,
		PerfumeID: data.PerfumeID,
		Size:      string(data.Size),
		Price:     data.Price,
		Stock:     data.Stock,
	}
}
