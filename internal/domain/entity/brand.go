package entity

// Brand is a perfume house. Names are unique across the catalog.
type Brand struct {
	ID       uint       `json:"id"`
	Name     string     `json:"name"`
	Logo     string     `json:"logo,omitempty"`
	Perfumes []*Perfume `json:"perfumes,omitempty"`
}
