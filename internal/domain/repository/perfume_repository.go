package repository

import (
	"context"
	"errors"

	"parfum/internal/domain/entity"
)

// ErrPerfumeNotFound is returned when a perfume does not exist in storage.
var ErrPerfumeNotFound = errors.New("perfume not found")

// PerfumeRepository defines the standard operations for perfume persistence.
type PerfumeRepository interface {
	// FindAll retrieves every perfume with its brand preloaded.
	FindAll(ctx context.Context) ([]*entity.Perfume, error)

	// FindByID retrieves a single perfume by its unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Perfume, error)

	// FindByName retrieves a perfume by its exact name.
	FindByName(ctx context.Context, name string) (*entity.Perfume, error)

	// Create persists a new perfume and fills in the generated ID.
	Create(ctx context.Context, perfume *entity.Perfume) error

	// Update applies the non-zero fields of perfume to the stored row.
	// Returns ErrPerfumeNotFound when no row was affected.
	Update(ctx context.Context, perfume *entity.Perfume) error

	// Delete removes a perfume by ID.
	// Returns ErrPerfumeNotFound when no row was affected.
	Delete(ctx context.Context, id uint) error
}
