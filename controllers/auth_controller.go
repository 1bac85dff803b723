package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spicepatrao/storefront-backend/services"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// Login signs in by email under the requested role.
func (ac *AuthController) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	user, svcErr := ac.Auth.Login(c.Request.Context(), req)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Register creates an account and signs it in.
func (ac *AuthController) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	user, svcErr := ac.Auth.Register(c.Request.Context(), req)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Logout clears the session. Always succeeds from the caller's view.
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.Auth.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// Me returns the current session.
func (ac *AuthController) Me(c *gin.Context) {
	session, err := ac.Auth.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// Verify marks the account under an email as verified.
func (ac *AuthController) Verify(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if svcErr := ac.Auth.Verify(c.Request.Context(), req.Email); svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account verified"})
}
