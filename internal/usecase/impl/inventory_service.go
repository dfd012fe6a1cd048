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

// inventoryService implements the InventoryUsecase interface. Inventory
// rows are created only as part of perfume creation; this service covers
// reads, updates and removals.
type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	logger        *slog.Logger
}

// InventoryServiceParams holds dependencies for inventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	InventoryRepo repository.InventoryRepository
	Logger        *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		inventoryRepo: params.InventoryRepo,
		logger:        params.Logger,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindAllInventory retrieves every inventory row with perfume and brand.
func (srv *inventoryService) FindAllInventory(ctx context.Context) ([]*entity.Inventory, error) {
	srv.log(ctx).Debug("Finding all inventory")

	inventory, err := srv.inventoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all inventory")
	}

	return inventory, nil
}

// FindInventoryByID retrieves a single inventory row.
func (srv *inventoryService) FindInventoryByID(ctx context.Context, id uint) (*entity.Inventory, error) {
	srv.log(ctx).Debug("Finding inventory", slog.Any("inventoryID", id))

	inventory, err := srv.inventoryRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrInventoryNotFound) {
		return nil, domainerrors.ErrInventoryNotFound.WrapMessage("inventory not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find inventory by id")
	}

	return inventory, nil
}

// UpdateInventory modifies size, price and stock of a row. Moving a row
// onto a size the perfume already carries trips the per-perfume size
// uniqueness and is reported as a conflict.
func (srv *inventoryService) UpdateInventory(ctx context.Context, input *usecase.UpdateInventoryInput) error {
	srv.log(ctx).Info("Updating inventory", slog.Any("inventoryID", input.ID))

	existing, err := srv.FindInventoryByID(ctx, input.ID)
	if err != nil {
		return err
	}

	if input.Size != "" && input.Size != existing.Size {
		siblings, err := srv.inventoryRepo.FindByPerfumeID(ctx, existing.PerfumeID)
		if err != nil {
			return errors.Wrap(err, "failed to check size uniqueness")
		}
		for _, sibling := range siblings {
			if sibling.ID != existing.ID && sibling.Size == input.Size {
				return domainerrors.ErrInventoryAlreadyExists.WrapMessage("perfume already has a variant of that size")
			}
		}
	}

	if err := srv.inventoryRepo.Update(ctx, &entity.Inventory{
		ID:        input.ID,
		PerfumeID: existing.PerfumeID,
		Size:      input.Size,
		Price:     input.Price,
		Stock:     input.Stock,
	}); err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			return domainerrors.ErrInventoryNotFound.WrapMessage("inventory not found")
		}

		return errors.Wrap(err, "failed to update inventory")
	}

	return nil
}

// UpdateStock sets the stock of a row to an absolute quantity.
func (srv *inventoryService) UpdateStock(ctx context.Context, input *usecase.UpdateStockInput) error {
	srv.log(ctx).Info("Updating stock",
		slog.Any("inventoryID", input.ID), slog.Int("quantity", input.Quantity))

	if err := srv.inventoryRepo.UpdateStock(ctx, input.ID, input.Quantity); err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			return domainerrors.ErrInventoryNotFound.WrapMessage("inventory not found")
		}

		return errors.Wrap(err, "failed to update stock")
	}

	return nil
}

// DeleteInventory removes a single inventory row.
func (srv *inventoryService) DeleteInventory(ctx context.Context, id uint) error {
	srv.log(ctx).Info("Deleting inventory", slog.Any("inventoryID", id))

	if err := srv.inventoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			return domainerrors.ErrInventoryNotFound.WrapMessage("inventory not found")
		}

		return errors.Wrap(err, "failed to delete inventory")
	}

	return nil
}

// SearchInventory retrieves inventory rows matching the given filters.
func (srv *inventoryService) SearchInventory(ctx context.Context, input *usecase.SearchInventoryInput) ([]*entity.Inventory, error) {
	srv.log(ctx).Debug("Searching inventory", slog.String("query", input.Query))

	inventory, err := srv.inventoryRepo.Search(ctx, repository.InventorySearchFilters{
		Query:    input.Query,
		Size:     input.Size,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		InStock:  input.InStock,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search inventory")
	}

	return inventory, nil
}
