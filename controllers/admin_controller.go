package controllers

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spicepatrao/storefront-backend/models"
	"github.com/spicepatrao/storefront-backend/services"
)

// AdminController backs the admin dashboard: inventory CRUD, mock
// analytics and AI product imagery.
type AdminController struct {
	Catalog   *services.CatalogService
	Analytics *services.AnalyticsService
	Images    *services.ImageService
	Orders    *services.CheckoutService
}

func NewAdminController(catalog *services.CatalogService, analytics *services.AnalyticsService, images *services.ImageService, orders *services.CheckoutService) *AdminController {
	return &AdminController{Catalog: catalog, Analytics: analytics, Images: images, Orders: orders}
}

func (ac *AdminController) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if svcErr := ac.Catalog.AddProduct(c.Request.Context(), &product); svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (ac *AdminController) UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	product.ID = c.Param("id")

	if svcErr := ac.Catalog.UpdateProduct(c.Request.Context(), &product); svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (ac *AdminController) DeleteProduct(c *gin.Context) {
	if svcErr := ac.Catalog.DeleteProduct(c.Request.Context(), c.Param("id")); svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// Dashboard returns the mock analytics view.
func (ac *AdminController) Dashboard(c *gin.Context) {
	stats, err := ac.Analytics.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute analytics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AllOrders lists every placed order for the back office.
func (ac *AdminController) AllOrders(c *gin.Context) {
	orders, err := ac.Orders.AllOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

type generateImageRequest struct {
	// ReferenceImage is an optional base64-encoded PNG whose packaging
	// style the generation should follow.
	ReferenceImage string `json:"reference_image"`
}

func (r *generateImageRequest) decode() ([]byte, error) {
	if r.ReferenceImage == "" {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(r.ReferenceImage)
}

// GenerateImage regenerates one product's packaging shot.
func (ac *AdminController) GenerateImage(c *gin.Context) {
	var req generateImageRequest
	_ = c.ShouldBindJSON(&req)

	ref, err := req.decode()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference_image is not valid base64"})
		return
	}

	product, svcErr := ac.Images.GenerateProductImage(c.Request.Context(), c.Param("id"), ref)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// GenerateAllImages regenerates the whole catalog sequentially.
func (ac *AdminController) GenerateAllImages(c *gin.Context) {
	var req generateImageRequest
	_ = c.ShouldBindJSON(&req)

	ref, err := req.decode()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference_image is not valid base64"})
		return
	}

	result, svcErr := ac.Images.GenerateAllImages(c.Request.Context(), ref)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, result)
}
