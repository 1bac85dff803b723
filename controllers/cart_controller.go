package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spicepatrao/storefront-backend/models"
	"github.com/spicepatrao/storefront-backend/services"
)

type CartController struct {
	Cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{Cart: cart}
}

func (cc *CartController) respondCart(c *gin.Context, cart *models.Cart) {
	total, err := cc.Cart.CartTotal(c.Request.Context(), cart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to price cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart, "total": total})
}

// GetCart returns the current cart with its derived total.
func (cc *CartController) GetCart(c *gin.Context) {
	cart, err := cc.Cart.Cart(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get cart"})
		return
	}
	cc.respondCart(c, cart)
}

// AddItem adds or merges a cart line.
func (cc *CartController) AddItem(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if item.ProductID == "" || !item.Weight.Valid() || item.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id, a valid weight and quantity >= 1 are required"})
		return
	}

	cart, err := cc.Cart.AddToCart(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}
	cc.respondCart(c, cart)
}

// UpdateQuantity replaces a line's quantity verbatim.
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	var req struct {
		Weight   models.Weight `json:"weight"`
		Quantity int           `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if !req.Weight.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid weight"})
		return
	}

	cart, err := cc.Cart.UpdateQuantity(c.Request.Context(), c.Param("product_id"), req.Weight, req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}
	cc.respondCart(c, cart)
}

// RemoveItem removes the line matching the product and weight.
func (cc *CartController) RemoveItem(c *gin.Context) {
	weight := models.Weight(c.Query("weight"))
	if !weight.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid weight"})
		return
	}

	cart, err := cc.Cart.RemoveFromCart(c.Request.Context(), c.Param("product_id"), weight)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}
	cc.respondCart(c, cart)
}

// ClearCart empties the line items, keeping the wishlist.
func (cc *CartController) ClearCart(c *gin.Context) {
	if err := cc.Cart.ClearCart(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

// AddToWishlist is idempotent.
func (cc *CartController) AddToWishlist(c *gin.Context) {
	cart, err := cc.Cart.AddToWishlist(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update wishlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishlist": cart.Wishlist})
}

func (cc *CartController) RemoveFromWishlist(c *gin.Context) {
	cart, err := cc.Cart.RemoveFromWishlist(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update wishlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishlist": cart.Wishlist})
}
