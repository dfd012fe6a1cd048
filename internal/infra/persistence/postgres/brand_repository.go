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

// brandRepository implements the repository.BrandRepository interface using GORM.
type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository is the constructor for brandRepository.
func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &brandRepository{db: db}
}

// FindAll retrieves every brand in the catalog.
func (repo *brandRepository) FindAll(ctx context.Context) ([]*entity.Brand, error) {
	var brandModels []*model.BrandModel
	if err := repo.db.WithContext(ctx).Find(&brandModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all brands")
	}

	brands := make([]*entity.Brand, 0, len(brandModels))
	for _, brandM := range brandModels {
		brands = append(brands, toBrandDomain(brandM))
	}

	return brands, nil
}

// FindByID retrieves a single brand by its unique ID.
func (repo *brandRepository) FindByID(ctx context.Context, id uint) (*entity.Brand, error) {
	var brandM model.BrandModel
	if err := repo.db.WithContext(ctx).First(&brandM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by id")
	}

	return toBrandDomain(&brandM), nil
}

// FindByName retrieves a brand by its exact name.
func (repo *brandRepository) FindByName(ctx context.Context, name string) (*entity.Brand, error) {
	var brandM model.BrandModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&brandM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by name")
	}

	return toBrandDomain(&brandM), nil
}

// Create persists a new brand.
func (repo *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	brandM := fromBrandDomain(brand)

	if err := repo.db.WithContext(ctx).Create(brandM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBrandAlreadyExists.WrapMessage("brand name already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required brand information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create brand")
	}

	brand.ID = brandM.ID

	return nil
}

// Update applies the non-zero fields of brand to the stored row.
func (repo *brandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	updates := map[string]any{}
	if brand.Name != "" {
		updates["name"] = brand.Name
	}
	if brand.Logo != "" {
		updates["logo"] = brand.Logo
	}
	if len(updates) == 0 {
		// Nothing to write; not a not-found.
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BrandModel{}).
		Where("id = ?", brand.ID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrBrandAlreadyExists.WrapMessage("brand name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update brand")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBrandNotFound
	}

	return nil
}

// Delete removes a brand by ID.
func (repo *brandRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.BrandModel{}, id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("brand still has perfumes")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete brand")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBrandNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBrandDomain converts a GORM BrandModel to a domain Brand entity.
func toBrandDomain(data *model.BrandModel) *entity.Brand {
	if data == nil {
		return nil
	}

	brand := &entity.Brand{
		ID:   data.ID,
		Name: data.Name,
		Logo: data.Logo,
	}
	for _, perfumeM := range data.Perfumes {
		brand.Perfumes = append(brand.Perfumes, toPerfumeDomain(perfumeM))
	}

	return brand
}

// fromBrandDomain converts a domain Brand entity to a GORM BrandModel for persistence.
func fromBrandDomain(data *entity.Brand) *model.BrandModel {
	if data == nil {
		return nil
	}

	return &model.BrandModel{
		ID:   data.ID,
		Name: data.Name,
		Logo: data.Logo,
	}
}
