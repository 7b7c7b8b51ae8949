// Package product defines the catalog's entity type.
package product

// Product represents a product entity in the catalog. The ID is assigned by
// the store on first save and never reassigned; lookups identify a product
// by ID only.
type Product struct {
	ID    int64
	Name  string
	Price float64
}

// GetID returns the product's identifier, or 0 if none has been assigned.
func (p *Product) GetID() int64 {
	return p.ID
}

// SetID assigns the product's identifier. Called by stores exactly once.
func (p *Product) SetID(id int64) {
	p.ID = id
}
