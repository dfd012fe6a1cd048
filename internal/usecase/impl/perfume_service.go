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
	"golang.org/x/sync/errgroup"
)

// perfumeService implements the PerfumeUsecase interface. It owns the
// coupling between the perfume and inventory lifecycles: every perfume is
// born with one zeroed inventory row per size variant, and cannot be
// deleted while any of those rows remain.
type perfumeService struct {
	perfumeRepo   repository.PerfumeRepository
	inventoryRepo repository.InventoryRepository
	logger        *slog.Logger
}

// PerfumeServiceParams holds dependencies for perfumeService, injected by Fx.
type PerfumeServiceParams struct {
	fx.In

	PerfumeRepo   repository.PerfumeRepository
	InventoryRepo repository.InventoryRepository
	Logger        *slog.Logger
}

// NewPerfumeService is the constructor for perfumeService.
func NewPerfumeService(params PerfumeServiceParams) usecase.PerfumeUsecase {
	return &perfumeService{
		perfumeRepo:   params.PerfumeRepo,
		inventoryRepo: params.InventoryRepo,
		logger:        params.Logger,
	}
}

func (srv *perfumeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindAllPerfumes retrieves every perfume with its brand.
func (srv *perfumeService) FindAllPerfumes(ctx context.Context) ([]*entity.Perfume, error) {
	srv.log(ctx).Debug("Finding all perfumes")

	perfumes, err := srv.perfumeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all perfumes")
	}

	return perfumes, nil
}

// FindPerfumeByID retrieves a single perfume.
func (srv *perfumeService) FindPerfumeByID(ctx context.Context, id uint) (*entity.Perfume, error) {
	srv.log(ctx).Debug("Finding perfume", slog.Any("perfumeID", id))

	perfume, err := srv.perfumeRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrPerfumeNotFound) {
		return nil, domainerrors.ErrPerfumeNotFound.WrapMessage("perfume not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find perfume by id")
	}

	return perfume, nil
}

// CreatePerfume creates a perfume, then fans out one inventory row per
// size variant with price=0 and stock=0. The per-size creates run
// concurrently with no ordering requirement, but all of them must finish
// before the call reports success. The fan-out is not in the same
// transaction as the perfume insert; a crash in between leaves a perfume
// without inventory rows.
func (srv *perfumeService) CreatePerfume(ctx context.Context, input *usecase.CreatePerfumeInput) (*entity.Perfume, error) {
	srv.log(ctx).Info("Creating perfume", slog.String("name", input.Name))

	if _, err := srv.perfumeRepo.FindByName(ctx, input.Name); err == nil {
		srv.log(ctx).Warn("Perfume already exists", slog.String("name", input.Name))

		return nil, domainerrors.ErrPerfumeAlreadyExists.WrapMessage("perfume already exists")
	} else if !errors.Is(err, repository.ErrPerfumeNotFound) {
		return nil, errors.Wrap(err, "failed to check perfume name uniqueness")
	}

	perfume := &entity.Perfume{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		BrandID:     input.BrandID,
	}
	if err := srv.perfumeRepo.Create(ctx, perfume); err != nil {
		return nil, errors.Wrap(err, "failed to create perfume")
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, size := range entity.AllSizes() {
		group.Go(func() error {
			return srv.inventoryRepo.Create(groupCtx, &entity.Inventory{
				PerfumeID: perfume.ID,
				Size:      size,
				Price:     0,
				Stock:     0,
			})
		})
	}
	if err := group.Wait(); err != nil {
		srv.log(ctx).Error("Failed to create inventory variants",
			slog.Any("perfumeID", perfume.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create inventory variants for perfume")
	}

	srv.log(ctx).Debug("Perfume created with inventory variants", slog.Any("perfumeID", perfume.ID))

	return perfume, nil
}

// UpdatePerfume applies a partial update, re-checking name uniqueness when
// the name changes.
func (srv *perfumeService) UpdatePerfume(ctx context.Context, input *usecase.UpdatePerfumeInput) error {
	srv.log(ctx).Info("Updating perfume", slog.Any("perfumeID", input.ID))

	if _, err := srv.FindPerfumeByID(ctx, input.ID); err != nil {
		return err
	}

	if input.Name != "" {
		existing, err := srv.perfumeRepo.FindByName(ctx, input.Name)
		if err == nil && existing.ID != input.ID {
			return domainerrors.ErrPerfumeAlreadyExists.WrapMessage("another perfume with that name already exists")
		}
		if err != nil && !errors.Is(err, repository.ErrPerfumeNotFound) {
			return errors.Wrap(err, "failed to check perfume name uniqueness")
		}
	}

	if err := srv.perfumeRepo.Update(ctx, &entity.Perfume{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		BrandID:     input.BrandID,
	}); err != nil {
		if errors.Is(err, repository.ErrPerfumeNotFound) {
			return domainerrors.ErrPerfumeNotFound.WrapMessage("perfume not found")
		}

		return errors.Wrap(err, "failed to update perfume")
	}

	return nil
}

// DeletePerfume removes a perfume. Deletion is blocked with a conflict
// while any inventory row for the perfume exists; the admin removes the
// size rows first, then the perfume.
func (srv *perfumeService) DeletePerfume(ctx context.Context, id uint) error {
	srv.log(ctx).Info("Deleting perfume", slog.Any("perfumeID", id))

	if _, err := srv.FindPerfumeByID(ctx, id); err != nil {
		return err
	}

	inventory, err := srv.inventoryRepo.FindByPerfumeID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to check inventory before perfume deletion")
	}
	if len(inventory) > 0 {
		srv.log(ctx).Warn("Perfume deletion blocked by existing inventory",
			slog.Any("perfumeID", id), slog.Int("inventoryRows", len(inventory)))

		return domainerrors.ErrPerfumeHasInventory.WrapMessage("perfume still has inventory rows")
	}

	if err := srv.perfumeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPerfumeNotFound) {
			return domainerrors.ErrPerfumeNotFound.WrapMessage("perfume not found")
		}

		return errors.Wrap(err, "failed to delete perfume")
	}

	return nil
}
