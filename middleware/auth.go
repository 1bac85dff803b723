package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spicepatrao/storefront-backend/models"
	"github.com/spicepatrao/storefront-backend/services"
)

// SessionUserKey is the gin context key for the signed-in user.
const SessionUserKey = "sessionUser"

// RequireUser rejects requests when nobody is signed in, otherwise puts
// the signed-in user on the gin context.
func RequireUser(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := auth.Current(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to read session"})
			return
		}
		if !session.IsAuthenticated || session.User == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(SessionUserKey, session.User)
		c.Next()
	}
}

// RequireAdmin additionally checks the admin role.
func RequireAdmin(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := auth.Current(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to read session"})
			return
		}
		if !session.IsAuthenticated || session.User == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if session.User.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
			return
		}
		c.Set(SessionUserKey, session.User)
		c.Next()
	}
}

// SessionUser returns the user stored by RequireUser/RequireAdmin.
func SessionUser(c *gin.Context) *models.User {
	if val, ok := c.Get(SessionUserKey); ok {
		if user, ok := val.(*models.User); ok {
			return user
		}
	}
	return nil
}
