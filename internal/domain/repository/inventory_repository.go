package repository

import (
	"context"
	"errors"

	"parfum/internal/domain/entity"
)

// ErrInventoryNotFound is returned when an inventory row does not exist in storage.
var ErrInventoryNotFound = errors.New("inventory not found")

// InventorySearchFilters narrows an inventory search. All set filters are
// combined with AND; zero values mean "no filter".
type InventorySearchFilters struct {
	// Query is matched case-insensitively as a substring of the perfume
	// name or the brand name.
	Query string

	// Size restricts results to one exact size variant.
	Size entity.Size

	// MinPrice and MaxPrice are inclusive bounds.
	MinPrice *float64
	MaxPrice *float64

	// InStock restricts results to rows with stock > 0.
	InStock bool
}

// InventoryRepository defines the standard operations for inventory persistence.
type InventoryRepository interface {
	// FindAll retrieves every inventory row with perfume and brand preloaded.
	FindAll(ctx context.Context) ([]*entity.Inventory, error)

	// FindByID retrieves a single inventory row by its unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Inventory, error)

	// FindByPerfumeID retrieves all inventory rows belonging to a perfume.
	FindByPerfumeID(ctx context.Context, perfumeID uint) ([]*entity.Inventory, error)

	// Create persists a new inventory row.
	Create(ctx context.Context, inventory *entity.Inventory) error

	// Update modifies size, price and stock of an existing row.
	// Returns ErrInventoryNotFound when no row was affected.
	Update(ctx context.Context, inventory *entity.Inventory) error

	// UpdateStock sets the stock of a row to an absolute quantity.
	// Returns ErrInventoryNotFound when no row was affected.
	UpdateStock(ctx context.Context, id uint, quantity int) error

	// Delete removes an inventory row by ID.
	// Returns ErrInventoryNotFound when no row was affected.
	Delete(ctx context.Context, id uint) error

	// Search retrieves inventory rows matching the given filters.
	Search(ctx context.Context, filters InventorySearchFilters) ([]*entity.Inventory, error)
}
