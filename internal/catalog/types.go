package catalog

import "strings"

// Shop is a seller or location that owns products.
type Shop struct {
	ID    int64  `json:"shop_id"`
	Title string `json:"title"`
}

// Product is a persisted catalog item.
type Product struct {
	ID     int64     `json:"product_id"`
	Name   string    `json:"name"`
	ShopID int64     `json:"shop_id"`
	Price  PriceList `json:"price"`
}

// NewProduct carries the caller-supplied fields of a product to insert.
// Shop may be empty; an empty title is a valid shop like any other.
type NewProduct struct {
	Name  string    `json:"name"`
	Shop  string    `json:"shop"`
	Price PriceList `json:"price"`
}

// Record is the projection returned by catalog queries: a product joined
// with the title of the shop it belongs to.
type Record struct {
	Name  string    `json:"name"`
	Shop  string    `json:"shop"`
	Price PriceList `json:"price"`
}

// Validate checks the fields required before an insert.
// Name and Shop are stored byte for byte as given; only a blank name is
// rejected. The price list is carried as given; an empty list is accepted here.
func (p NewProduct) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Message: "product name is required"}
	}
	return nil
}
