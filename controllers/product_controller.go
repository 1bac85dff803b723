package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spicepatrao/storefront-backend/models"
	"github.com/spicepatrao/storefront-backend/repository"
	"github.com/spicepatrao/storefront-backend/services"
)

type ProductController struct {
	Catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{Catalog: catalog}
}

// GetProducts lists the catalog with browse filters applied.
func (pc *ProductController) GetProducts(c *gin.Context) {
	params := services.ListProductsParams{
		Category: models.Category(c.Query("category")),
		Search:   c.Query("search"),
		Sort:     c.DefaultQuery("sort", "featured"),
	}

	products, err := pc.Catalog.ListProducts(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

// GetProduct returns one product with its full derived price table.
func (pc *ProductController) GetProduct(c *gin.Context) {
	product, err := pc.Catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err == repository.ErrProductNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
		return
	}

	prices := map[models.Weight]int{
		models.Weight100g: services.UnitPrice(product, models.Weight100g),
		models.Weight250g: services.UnitPrice(product, models.Weight250g),
		models.Weight500g: services.UnitPrice(product, models.Weight500g),
		models.Weight1kg:  services.UnitPrice(product, models.Weight1kg),
	}
	c.JSON(http.StatusOK, gin.H{"product": product, "prices": prices})
}
