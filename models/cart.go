package models

import "time"

// Weight is a pack weight, the sale unit of a spice.
type Weight string

const (
	Weight100g Weight = "100g"
	Weight250g Weight = "250g"
	Weight500g Weight = "500g"
	Weight1kg  Weight = "1kg"
)

// Valid reports whether w is one of the sold pack weights.
func (w Weight) Valid() bool {
	switch w {
	case Weight100g, Weight250g, Weight500g, Weight1kg:
		return true
	}
	return false
}

// CartItem is a single cart line, keyed by (ProductID, Weight).
type CartItem struct {
	ProductID string `json:"product_id"`
	Weight    Weight `json:"weight"`
	Quantity  int    `json:"quantity"`
}

// Cart holds the cart lines and the wishlist for the active session.
type Cart struct {
	Items     []CartItem `json:"items"`
	Wishlist  []string   `json:"wishlist"`
	UpdatedAt time.Time  `json:"updated_at"`
}
