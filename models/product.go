package models

// Category is the closed set of spice categories.
type Category string

const (
	CategoryWhole  Category = "whole"
	CategoryPowder Category = "powder"
	CategoryBlend  Category = "blend"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryWhole, CategoryPowder, CategoryBlend:
		return true
	}
	return false
}

// Product is a catalog entry. Prices are whole currency units (INR);
// only the 100g and 1kg tiers are stored, the 250g and 500g tiers are
// derived (see services.UnitPrice).
type Product struct {
	ID          string   `json:"id"`
	NameEn      string   `json:"name_en"`
	NameHi      string   `json:"name_hi"`
	Image       string   `json:"image"`
	Price100g   int      `json:"price_100g"`
	Price1kg    int      `json:"price_1kg"`
	Stock       int      `json:"stock"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	IsNew       bool     `json:"is_new,omitempty"`
	IsTopSeller bool     `json:"is_top_seller,omitempty"`
}
