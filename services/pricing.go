// Package services holds the storefront business logic: cart and
// wishlist mutations, catalog administration, mock authentication,
// checkout, analytics and AI product imagery.
package services

import (
	"math"

	"github.com/spicepatrao/storefront-backend/models"
)

// UnitPrice derives the price of one pack of the given weight. Only the
// 100g and 1kg tiers are stored on the product; 250g carries a bulk
// discount versus four 100g packs and 500g a premium versus half a 1kg
// pack. The full expression is computed first and rounded half-up once,
// so totals agree across cart, detail and checkout views.
func UnitPrice(p *models.Product, weight models.Weight) int {
	switch weight {
	case models.Weight1kg:
		return p.Price1kg
	case models.Weight500g:
		return roundHalfUp(float64(p.Price1kg) / 2 * 1.05)
	case models.Weight250g:
		return roundHalfUp(float64(p.Price100g) * 2.5 * 0.95)
	default:
		return p.Price100g
	}
}

// LinePrice is the price of a cart line: derived unit price times quantity.
func LinePrice(p *models.Product, item models.CartItem) int {
	return UnitPrice(p, item.Weight) * item.Quantity
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
