package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/spicepatrao/storefront-backend/models"
	"github.com/spicepatrao/storefront-backend/repository"
)

// CartService mutates the persisted cart and wishlist. Every operation
// is a read-modify-write of the whole cart snapshot; line items are
// keyed by (product, weight).
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{carts: carts, products: products, logger: logger}
}

// Cart returns the current cart snapshot.
func (s *CartService) Cart(ctx context.Context) (*models.Cart, error) {
	return s.carts.Get(ctx)
}

// AddToCart merges into an existing (product, weight) line by adding
// quantities, otherwise appends a new line at the end.
func (s *CartService) AddToCart(ctx context.Context, item models.CartItem) (*models.Cart, error) {
	cart, err := s.carts.Get(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	for i, existing := range cart.Items {
		if existing.ProductID == item.ProductID && existing.Weight == item.Weight {
			cart.Items[i].Quantity += item.Quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, item)
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveFromCart drops the matching line. Removing an absent line is a
// no-op.
func (s *CartService) RemoveFromCart(ctx context.Context, productID string, weight models.Weight) (*models.Cart, error) {
	cart, err := s.carts.Get(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ProductID == productID && item.Weight == weight {
			continue
		}
		items = append(items, item)
	}
	cart.Items = items

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity replaces the matching line's quantity verbatim. A
// quantity of zero or less leaves a degenerate line in the cart instead
// of removing it; callers are expected to clamp to >= 1. The original
// storefront behaves the same way, so this is kept, but logged.
func (s *CartService) UpdateQuantity(ctx context.Context, productID string, weight models.Weight, quantity int) (*models.Cart, error) {
	cart, err := s.carts.Get(ctx)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		s.logger.Warn("Cart line set to non-positive quantity, line kept",
			zap.String("product_id", productID),
			zap.String("weight", string(weight)),
			zap.Int("quantity", quantity))
	}

	for i, item := range cart.Items {
		if item.ProductID == productID && item.Weight == weight {
			cart.Items[i].Quantity = quantity
		}
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// ClearCart empties the line items. The wishlist is untouched.
func (s *CartService) ClearCart(ctx context.Context) error {
	cart, err := s.carts.Get(ctx)
	if err != nil {
		return err
	}
	cart.Items = []models.CartItem{}
	return s.carts.Save(ctx, cart)
}

// AddToWishlist is idempotent: a product already on the wishlist is not
// added twice.
func (s *CartService) AddToWishlist(ctx context.Context, productID string) (*models.Cart, error) {
	cart, err := s.carts.Get(ctx)
	if err != nil {
		return nil, err
	}

	for _, id := range cart.Wishlist {
		if id == productID {
			return cart, nil
		}
	}
	cart.Wishlist = append(cart.Wishlist, productID)

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) RemoveFromWishlist(ctx context.Context, productID string) (*models.Cart, error) {
	cart, err := s.carts.Get(ctx)
	if err != nil {
		return nil, err
	}

	wishlist := make([]string, 0, len(cart.Wishlist))
	for _, id := range cart.Wishlist {
		if id != productID {
			wishlist = append(wishlist, id)
		}
	}
	cart.Wishlist = wishlist

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// CartTotal derives the cart total from current catalog prices. Lines
// whose product no longer exists are skipped, mirroring how the
// storefront silently drops dangling references.
func (s *CartService) CartTotal(ctx context.Context, cart *models.Cart) (int, error) {
	total := 0
	for _, item := range cart.Items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err == repository.ErrProductNotFound {
			continue
		}
		if err != nil {
			return 0, err
		}
		total += LinePrice(product, item)
	}
	return total, nil
}
