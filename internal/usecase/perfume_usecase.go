package usecase

import (
	"context"

	"parfum/internal/domain/entity"
)

// CreatePerfumeInput defines the data required to create a perfume.
type CreatePerfumeInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"omitempty"`
	BrandID     uint   `json:"brandId" validate:"required"`
}

// UpdatePerfumeInput defines a partial update to a perfume.
type UpdatePerfumeInput struct {
	ID          uint   `json:"-"`
	Name        string `json:"name" validate:"omitempty"`
	Description string `json:"description" validate:"omitempty"`
	ImageURL    string `json:"imageUrl" validate:"omitempty"`
	BrandID     uint   `json:"brandId" validate:"omitempty"`
}

// PerfumeUsecase defines the interface for perfume management operations.
type PerfumeUsecase interface {
	FindAllPerfumes(ctx context.Context) ([]*entity.Perfume, error)
	FindPerfumeByID(ctx context.Context, id uint) (*entity.Perfume, error)

	// CreatePerfume creates a perfume and fans out one zeroed inventory
	// row per size variant. All variant rows must exist before the call
	// reports success.
	CreatePerfume(ctx context.Context, input *CreatePerfumeInput) (*entity.Perfume, error)

	// UpdatePerfume applies a partial update, re-checking name uniqueness
	// when the name changes.
	UpdatePerfume(ctx context.Context, input *UpdatePerfumeInput) error

	// DeletePerfume removes a perfume. Blocked with a conflict while any
	// inventory row for the perfume exists.
	DeletePerfume(ctx context.Context, id uint) error
}
