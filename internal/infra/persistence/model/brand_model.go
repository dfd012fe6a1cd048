package model

// BrandModel is the GORM model for the brands table.
// The unique index on name backs the service-level uniqueness pre-check,
// closing the race between concurrent creators of the same name.
type BrandModel struct {
	ID       uint            `gorm:"primaryKey"`
	Name     string          `gorm:"uniqueIndex;not null"`
	Logo     string          `gorm:""`
	Perfumes []*PerfumeModel `gorm:"foreignKey:BrandID"`
}

// TableName specifies the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}
