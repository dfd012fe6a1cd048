package model

import "time"

// InventoryModel is the GORM model for the inventory table.
// The composite unique index on (perfume_id, size) enforces the
// one-row-per-variant invariant the schema previously left implicit.
type InventoryModel struct {
	ID        uint          `gorm:"primaryKey"`
	PerfumeID uint          `gorm:"uniqueIndex:idx_inventory_perfume_size;not null"`
	Perfume   *PerfumeModel `gorm:"foreignKey:PerfumeID"`
	Size      string        `gorm:"uniqueIndex:idx_inventory_perfume_size;not null"`
	Price     float64       `gorm:"type:numeric(10,2);not null;default:0"`
	Stock     int           `gorm:"not null;default:0"`
	CreatedAt time.Time     `gorm:"autoCreateTime"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM.
func (InventoryModel) TableName() string {
	return "inventory"
}
