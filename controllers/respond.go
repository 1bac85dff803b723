package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/spicepatrao/storefront-backend/services"
)

// abortWithServiceError maps a typed service error onto the JSON error
// shape used across handlers.
func abortWithServiceError(c *gin.Context, svcErr *services.ServiceError) {
	body := gin.H{"error": svcErr.Message}
	if len(svcErr.Fields) > 0 {
		body["fields"] = svcErr.Fields
	}
	c.JSON(svcErr.StatusCode, body)
}
