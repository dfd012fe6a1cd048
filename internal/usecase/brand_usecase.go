package usecase

import (
	"context"

	"parfum/internal/domain/entity"
)

// CreateBrandInput defines the data required to create a brand.
type CreateBrandInput struct {
	Name string `json:"name" validate:"required"`
	Logo string `json:"logo" validate:"omitempty"`
}

// UpdateBrandInput defines a partial update to a brand.
type UpdateBrandInput struct {
	ID   uint   `json:"-"`
	Name string `json:"name" validate:"omitempty"`
	Logo string `json:"logo" validate:"omitempty"`
}

// BrandUsecase defines the interface for brand management operations.
type BrandUsecase interface {
	FindAllBrands(ctx context.Context) ([]*entity.Brand, error)
	FindBrandByID(ctx context.Context, id uint) (*entity.Brand, error)

	// CreateBrand creates a brand after checking name uniqueness.
	CreateBrand(ctx context.Context, input *CreateBrandInput) (*entity.Brand, error)

	// UpdateBrand applies a partial update, re-checking name uniqueness
	// when the name changes.
	UpdateBrand(ctx context.Context, input *UpdateBrandInput) error

	DeleteBrand(ctx context.Context, id uint) error
}
