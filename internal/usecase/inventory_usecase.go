package usecase

import (
	"context"

	"parfum/internal/domain/entity"
)

// UpdateInventoryInput defines an update to an inventory row's
// size, price and stock.
type UpdateInventoryInput struct {
	ID    uint        `json:"-"`
	Size  entity.Size `json:"size" validate:"omitempty,oneof=50 100 200"`
	Price float64     `json:"price" validate:"gte=0"`
	Stock int         `json:"stock" validate:"gte=0"`
}

// UpdateStockInput sets the absolute stock quantity of an inventory row.
type UpdateStockInput struct {
	ID       uint `json:"-"`
	Quantity int  `json:"quantity" validate:"gte=0"`
}

// SearchInventoryInput narrows an inventory search; all filters are
// combined with AND. Price bounds are inclusive.
type SearchInventoryInput struct {
	Query    string
	Size     entity.Size
	MinPrice *float64
	MaxPrice *float64
	InStock  bool
}

// InventoryUsecase defines the interface for inventory management operations.
type InventoryUsecase interface {
	FindAllInventory(ctx context.Context) ([]*entity.Inventory, error)
	FindInventoryByID(ctx context.Context, id uint) (*entity.Inventory, error)

	UpdateInventory(ctx context.Context, input *UpdateInventoryInput) error
	UpdateStock(ctx context.Context, input *UpdateStockInput) error

	// DeleteInventory removes a single inventory row. Deleting every row
	// of a perfume unblocks that perfume's deletion.
	DeleteInventory(ctx context.Context, id uint) error

	SearchInventory(ctx context.Context, input *SearchInventoryInput) ([]*entity.Inventory, error)
}
