package entity

// Perfume is a catalog product belonging to a brand. Names are unique
// across the catalog. Stock is tracked per size variant in Inventory,
// never on the perfume itself.
type Perfume struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	BrandID     uint         `json:"brandId"`
	Brand       *Brand       `json:"brand,omitempty"`
	Inventory   []*Inventory `json:"inventory,omitempty"`
}
