package model

// PerfumeModel is the GORM model for the perfumes table.
type PerfumeModel struct {
	ID          uint              `gorm:"primaryKey"`
	Name        string            `gorm:"uniqueIndex;not null"`
	Description string            `gorm:"type:text;not null"`
	ImageURL    string            `gorm:"column:image_url"`
	BrandID     uint              `gorm:"index;not null"`
	Brand       *BrandModel       `gorm:"foreignKey:BrandID"`
	Inventory   []*InventoryModel `gorm:"foreignKey:PerfumeID"`
}

// TableName specifies the table name for GORM.
func (PerfumeModel) TableName() string {
	return "perfumes"
}
