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

// perfumeRepository implements the repository.PerfumeRepository interface using GORM.
type perfumeRepository struct {
	db *gorm.DB
}

// NewPerfumeRepository is the constructor for perfumeRepository.
func NewPerfumeRepository(db *gorm.DB) repository.PerfumeRepository {
	return &perfumeRepository{db: db}
}

// FindAll retrieves every perfume with its brand preloaded.
func (repo *perfumeRepository) FindAll(ctx context.Context) ([]*entity.Perfume, error) {
	var perfumeModels []*model.PerfumeModel
	if err := repo.db.WithContext(ctx).Preload("Brand").Find(&perfumeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all perfumes")
	}

	perfumes := make([]*entity.Perfume, 0, len(perfumeModels))
	for _, perfumeM := range perfumeModels {
		perfumes = append(perfumes, toPerfumeDomain(perfumeM))
	}

	return perfumes, nil
}

// FindByID retrieves a single perfume by its unique ID.
func (repo *perfumeRepository) FindByID(ctx context.Context, id uint) (*entity.Perfume, error) {
	var perfumeM model.PerfumeModel
	if err := repo.db.WithContext(ctx).Preload("Brand").First(&perfumeM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPerfumeNotFound
		}

		return nil, errors.Wrap(err, "failed to find perfume by id")
	}

	return toPerfumeDomain(&perfumeM), nil
}

// FindByName retrieves a perfume by its exact name.
func (repo *perfumeRepository) FindByName(ctx context.Context, name string) (*entity.Perfume, error) {
	var perfumeM model.PerfumeModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&perfumeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPerfumeNotFound
		}

		return nil, errors.Wrap(err, "failed to find perfume by name")
	}

	return toPerfumeDomain(&perfumeM), nil
}

// Create persists a new perfume and fills in the generated ID.
func (repo *perfumeRepository) Create(ctx context.Context, perfume *entity.Perfume) error {
	perfumeM := fromPerfumeDomain(perfume)

	if err := repo.db.WithContext(ctx).Create(perfumeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPerfumeAlreadyExists.WrapMessage("perfume name already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBrandNotFound.WrapMessage("perfume references an unknown brand")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required perfume information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create perfume")
	}

	perfume.ID = perfumeM.ID

	return nil
}

// Update applies the non-zero fields of perfume to the stored row.
func (repo *perfumeRepository) Update(ctx context.Context, perfume *entity.Perfume) error {
	updates := map[string]any{}
	if perfume.Name != "" {
		updates["name"] = perfume.Name
	}
	if perfume.Description != "" {
		updates["description"] = perfume.Description
	}
	if perfume.ImageURL != "" {
		updates["image_url"] = perfume.ImageURL
	}
	if perfume.BrandID != 0 {
		updates["brand_id"] = perfume.BrandID
	}
	if len(updates) == 0 {
		// Nothing to write; not a not-found.
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PerfumeModel{}).
		Where("id = ?", perfume.ID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrPerfumeAlreadyExists.WrapMessage("perfume name already exists")
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrBrandNotFound.WrapMessage("perfume references an unknown brand")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update perfume")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPerfumeNotFound
	}

	return nil
}

// Delete removes a perfume by ID.
func (repo *perfumeRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.PerfumeModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete perfume")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPerfumeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPerfumeDomain converts a GORM PerfumeModel to a domain Perfume entity.
func toPerfumeDomain(data *model.PerfumeModel) *entity.Perfume {
	if data == nil {
		return nil
	}

	perfume := &entity.Perfume{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		BrandID:     data.BrandID,
		Brand:       toBrandDomain(data.Brand),
	}
	for _, invM := range data.Inventory {
		perfume.Inventory = append(perfume.Inventory, toInventoryDomain(invM))
	}

	return perfume
}

// fromPerfumeDomain converts a domain Perfume entity to a GORM PerfumeModel for persistence.
func fromPerfumeDomain(data *entity.Perfume) *model.PerfumeModel {
	if data == nil {
		return nil
	}

	return &model.PerfumeModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		BrandID:     data.BrandID,
	}
}
