package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spicepatrao/storefront-backend/controllers"
	"github.com/spicepatrao/storefront-backend/middleware"
	"github.com/spicepatrao/storefront-backend/services"
)

// Register sets up the storefront and admin routes.
func Register(
	r *gin.Engine,
	auth *services.AuthService,
	authCtrl *controllers.AuthController,
	productCtrl *controllers.ProductController,
	cartCtrl *controllers.CartController,
	orderCtrl *controllers.OrderController,
	adminCtrl *controllers.AdminController,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth
	authRoutes := r.Group("/auth")
	authRoutes.POST("/login", authCtrl.Login)
	authRoutes.POST("/register", authCtrl.Register)
	authRoutes.POST("/logout", authCtrl.Logout)
	authRoutes.POST("/verify", authCtrl.Verify)
	authRoutes.GET("/me", authCtrl.Me)

	// Catalog browsing
	r.GET("/products", productCtrl.GetProducts)
	r.GET("/products/:id", productCtrl.GetProduct)

	// Cart and wishlist (guests included; the cart is per storefront
	// instance, like the original's per-browser cart)
	cartRoutes := r.Group("/cart")
	cartRoutes.GET("", cartCtrl.GetCart)
	cartRoutes.POST("/items", cartCtrl.AddItem)
	cartRoutes.PUT("/items/:product_id", cartCtrl.UpdateQuantity)
	cartRoutes.DELETE("/items/:product_id", cartCtrl.RemoveItem)
	cartRoutes.DELETE("", cartCtrl.ClearCart)

	r.POST("/wishlist/:product_id", cartCtrl.AddToWishlist)
	r.DELETE("/wishlist/:product_id", cartCtrl.RemoveFromWishlist)

	// Checkout and order history
	r.POST("/checkout", orderCtrl.PlaceOrder)
	r.GET("/orders", middleware.RequireUser(auth), orderCtrl.MyOrders)

	// Admin back office
	adminRoutes := r.Group("/admin")
	adminRoutes.Use(middleware.RequireAdmin(auth))
	adminRoutes.GET("/analytics", adminCtrl.Dashboard)
	adminRoutes.GET("/orders", adminCtrl.AllOrders)
	adminRoutes.POST("/products", adminCtrl.CreateProduct)
	adminRoutes.PUT("/products/:id", adminCtrl.UpdateProduct)
	adminRoutes.DELETE("/products/:id", adminCtrl.DeleteProduct)
	adminRoutes.POST("/products/:id/image", adminCtrl.GenerateImage)
	adminRoutes.POST("/images", adminCtrl.GenerateAllImages)
}
