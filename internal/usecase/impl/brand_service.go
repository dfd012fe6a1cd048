package impl

import (
	"context"
	"log/slog"

	deliverycontext "parfum/internal/delivery/context"
	"parfum/internal/domain/entity"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/domain/repository"
	"parfum/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// brandService implements the BrandUsecase interface.
type brandService struct {
	brandRepo repository.BrandRepository
	logger    *slog.Logger
}

// BrandServiceParams holds dependencies for brandService, injected by Fx.
type BrandServiceParams struct {
	fx.In

	BrandRepo repository.BrandRepository
	Logger    *slog.Logger
}

// NewBrandService is the constructor for brandService.
func NewBrandService(params BrandServiceParams) usecase.BrandUsecase {
	return &brandService{
		brandRepo: params.BrandRepo,
		logger:    params.Logger,
	}
}

func (srv *brandService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindAllBrands retrieves every brand in the catalog.
func (srv *brandService) FindAllBrands(ctx context.Context) ([]*entity.Brand, error) {
	srv.log(ctx).Debug("Finding all brands")

	brands, err := srv.brandRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all brands")
	}

	return brands, nil
}

// FindBrandByID retrieves a single brand.
func (srv *brandService) FindBrandByID(ctx context.Context, id uint) (*entity.Brand, error) {
	srv.log(ctx).Debug("Finding brand", slog.Any("brandID", id))

	brand, err := srv.brandRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrBrandNotFound) {
		return nil, domainerrors.ErrBrandNotFound.WrapMessage("brand not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find brand by id")
	}

	return brand, nil
}

// CreateBrand creates a brand after checking name uniqueness. The unique
// index on the name column backs this pre-check against concurrent creators.
func (srv *brandService) CreateBrand(ctx context.Context, input *usecase.CreateBrandInput) (*entity.Brand, error) {
	srv.log(ctx).Info("Creating brand", slog.String("name", input.Name))

	if _, err := srv.brandRepo.FindByName(ctx, input.Name); err == nil {
		srv.log(ctx).Warn("Brand already exists", slog.String("name", input.Name))

		return nil, domainerrors.ErrBrandAlreadyExists.WrapMessage("brand already exists")
	} else if !errors.Is(err, repository.ErrBrandNotFound) {
		return nil, errors.Wrap(err, "failed to check brand name uniqueness")
	}

	brand := &entity.Brand{
		Name: input.Name,
		Logo: input.Logo,
	}
	if err := srv.brandRepo.Create(ctx, brand); err != nil {
		return nil, errors.Wrap(err, "failed to create brand")
	}

	srv.log(ctx).Debug("Brand created", slog.Any("brandID", brand.ID))

	return brand, nil
}

// UpdateBrand applies a partial update, re-checking name uniqueness when
// the name changes.
func (srv *brandService) UpdateBrand(ctx context.Context, input *usecase.UpdateBrandInput) error {
	srv.log(ctx).Info("Updating brand", slog.Any("brandID", input.ID))

	if input.Name != "" {
		existing, err := srv.brandRepo.FindByName(ctx, input.Name)
		if err == nil && existing.ID != input.ID {
			return domainerrors.ErrBrandAlreadyExists.WrapMessage("another brand with that name already exists")
		}
		if err != nil && !errors.Is(err, repository.ErrBrandNotFound) {
			return errors.Wrap(err, "failed to check brand name uniqueness")
		}
	}

	if err := srv.brandRepo.Update(ctx, &entity.Brand{
		ID:   input.ID,
		Name: input.Name,
		Logo: input.Logo,
	}); err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return domainerrors.ErrBrandNotFound.WrapMessage("brand not found")
		}

		return errors.Wrap(err, "failed to update brand")
	}

	return nil
}

// DeleteBrand removes a brand by ID.
func (srv *brandService) DeleteBrand(ctx context.Context, id uint) error {
	srv.log(ctx).Info("Deleting brand", slog.Any("brandID", id))

	if err := srv.brandRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return domainerrors.ErrBrandNotFound.WrapMessage("brand not found")
		}

		return errors.Wrap(err, "failed to delete brand")
	}

	return nil
}
