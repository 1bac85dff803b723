package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spicepatrao/storefront-backend/middleware"
	"github.com/spicepatrao/storefront-backend/services"
)

type OrderController struct {
	Checkout *services.CheckoutService
}

func NewOrderController(checkout *services.CheckoutService) *OrderController {
	return &OrderController{Checkout: checkout}
}

// PlaceOrder checks out the current cart. Guests may check out; the
// order is then owned by the guest sentinel.
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var req struct {
		PaymentMethod string `json:"payment_method"`
	}
	// Body is optional; the payment method falls back to UPI.
	_ = c.ShouldBindJSON(&req)

	order, svcErr := oc.Checkout.PlaceOrder(c.Request.Context(), req.PaymentMethod)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// MyOrders lists the signed-in user's orders, newest first.
func (oc *OrderController) MyOrders(c *gin.Context) {
	user := middleware.SessionUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders, err := oc.Checkout.OrdersForUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}
