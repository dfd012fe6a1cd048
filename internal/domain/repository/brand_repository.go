package repository

import (
	"context"
	"errors"

	"parfum/internal/domain/entity"
)

// ErrBrandNotFound is returned when a brand does not exist in storage.
var ErrBrandNotFound = errors.New("brand not found")

// BrandRepository defines the standard operations for brand persistence.
type BrandRepository interface {
	// FindAll retrieves every brand in the catalog.
	FindAll(ctx context.Context) ([]*entity.Brand, error)

	// FindByID retrieves a single brand by its unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Brand, error)

	// FindByName retrieves a brand by its exact name.
	FindByName(ctx context.Context, name string) (*entity.Brand, error)

	// Create persists a new brand.
	Create(ctx context.Context, brand *entity.Brand) error

	// Update applies the non-zero fields of brand to the stored row.
	// Returns ErrBrandNotFound when no row was affected.
	Update(ctx context.Context, brand *entity.Brand) error

	// Delete removes a brand by ID.
	// Returns ErrBrandNotFound when no row was affected.
	Delete(ctx context.Context, id uint) error
}
