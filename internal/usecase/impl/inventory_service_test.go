package impl

import (
	"context"
	"testing"

	"parfum/internal/domain/entity"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/domain/repository"
	"parfum/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type inventoryServiceFixtures struct {
	service       usecase.InventoryUsecase
	inventoryRepo *mockInventoryRepository
}

func createTestInventoryService(t *testing.T) inventoryServiceFixtures {
	t.Helper()

	inventoryRepo := &mockInventoryRepository{}
	service := NewInventoryService(InventoryServiceParams{
		InventoryRepo: inventoryRepo,
		Logger:        newDiscardLogger(),
	})

	return inventoryServiceFixtures{
		service:       service,
		inventoryRepo: inventoryRepo,
	}
}

func TestInventoryService_FindInventoryByID_NotFound(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()

	fx.inventoryRepo.On("FindByID", ctx, uint(42)).Return(nil, repository.ErrInventoryNotFound)

	row, err := fx.service.FindInventoryByID(ctx, 42)

	require.Error(t, err)
	assert.Nil(t, row)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInventoryNotFound.HTTPCode(), appErr.HTTPCode())
}

func TestInventoryService_UpdateInventory_Success(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()

	existing := &entity.Inventory{ID: 5, PerfumeID: 10, Size: entity.SizeSmall, Price: 49.9, Stock: 2}
	fx.inventoryRepo.On("FindByID", ctx, uint(5)).Return(existing, nil)
	fx.inventoryRepo.On("Update", ctx, mock.MatchedBy(func(row *entity.Inventory) bool {
		return row.ID == 5 && row.Size == entity.SizeSmall && row.Price == 59.9 && row.Stock == 8
	})).Return(nil)

	err := fx.service.UpdateInventory(ctx, &usecase.UpdateInventoryInput{
		ID:    5,
		Size:  entity.SizeSmall,
		Price: 59.9,
		Stock: 8,
	})

	require.NoError(t, err)
	fx.inventoryRepo.AssertExpectations(t)
}

func TestInventoryService_UpdateInventory_SizeConflict(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()

	existing := &entity.Inventory{ID: 5, PerfumeID: 10, Size: entity.SizeSmall}
	fx.inventoryRepo.On("FindByID", ctx, uint(5)).Return(existing, nil)
	fx.inventoryRepo.On("FindByPerfumeID", ctx, uint(10)).Return([]*entity.Inventory{
		existing,
		{ID: 6, PerfumeID: 10, Size: entity.SizeMedium},
	}, nil)

	err := fx.service.UpdateInventory(ctx, &usecase.UpdateInventoryInput{
		ID:   5,
		Size: entity.SizeMedium,
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInventoryAlreadyExists.ErrorCode(), appErr.ErrorCode())
	fx.inventoryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestInventoryService_UpdateStock_Success(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()

	fx.inventoryRepo.On("UpdateStock", ctx, uint(5), 12).Return(nil)

	require.NoError(t, fx.service.UpdateStock(ctx, &usecase.UpdateStockInput{ID: 5, Quantity: 12}))
	fx.inventoryRepo.AssertExpectations(t)
}

func TestInventoryService_UpdateStock_NotFound(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()

	fx.inventoryRepo.On("UpdateStock", ctx, uint(42), 1).Return(repository.ErrInventoryNotFound)

	err := fx.service.UpdateStock(ctx, &usecase.UpdateStockInput{ID: 42, Quantity: 1})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInventoryNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestInventoryService_DeleteInventory_Success(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()

	fx.inventoryRepo.On("Delete", ctx, uint(5)).Return(nil)

	require.NoError(t, fx.service.DeleteInventory(ctx, 5))
}

func TestInventoryService_SearchInventory_PassesFilters(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()

	minPrice := 20.0
	maxPrice := 80.0
	expected := []*entity.Inventory{{ID: 5, PerfumeID: 10, Size: entity.SizeMedium, Price: 59.9, Stock: 3}}

	fx.inventoryRepo.On("Search", ctx, repository.InventorySearchFilters{
		Query:    "chanel",
		Size:     entity.SizeMedium,
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		InStock:  true,
	}).Return(expected, nil)

	rows, err := fx.service.SearchInventory(ctx, &usecase.SearchInventoryInput{
		Query:    "chanel",
		Size:     entity.SizeMedium,
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		InStock:  true,
	})

	require.NoError(t, err)
	assert.Equal(t, expected, rows)
}
