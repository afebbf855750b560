package auth

import (
	"context"
	"net/http"

	"placebook/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// UserGetter loads a user by ID.
type UserGetter interface {
	Get(ctx context.Context, id uint) (*models.User, error)
}

// AdminMiddleware creates a gin middleware to check for the admin role.
// It must be used AFTER the standard AuthMiddleware.
func AdminMiddleware(users UserGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			// This should not happen if AuthMiddleware is used before it
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		user, err := users.Get(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Authenticated user not found"})
			return
		}

		if !user.Roles.Has(models.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Next()
	}
}
