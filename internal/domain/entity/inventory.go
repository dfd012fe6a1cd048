package entity

import "time"

// Size is a fixed perfume bottle size in milliliters. Each size of a
// perfume is tracked as an independent inventory row.
type Size string

const (
	SizeSmall  Size = "50"
	SizeMedium Size = "100"
	SizeLarge  Size = "200"
)

// AllSizes lists every defined size variant. A perfume is expected to
// carry exactly one inventory row per entry.
func AllSizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}

// Valid reports whether s is one of the defined size variants.
func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}

	return false
}

// Inventory holds price and stock for one (perfume, size) pair.
// Rows are born alongside their perfume with price=0 and stock=0 and
// are edited independently afterwards.
type Inventory struct {
	ID        uint      `json:"id"`
	PerfumeID uint      `json:"perfumeId"`
	Perfume   *Perfume  `json:"perfume,omitempty"`
	Size      Size      `json:"size"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
