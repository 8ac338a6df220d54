package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// RequireAuth validates the Bearer token and stores the authenticated user
// id in the request context.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authentication required"})
			return
		}

		userID, err := utils.ParseAccessToken(jwtSecret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid or expired token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// RequireVerified gates routes behind a verified email address. Must run
// after RequireAuth.
func RequireVerified(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.ByID(UserID(c))
		if errors.Is(err, services.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authentication required"})
			return
		}
		if err != nil {
			log.Printf("❌ Failed to load account %d: %v", UserID(c), err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to load account"})
			return
		}
		if !user.Verified() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "email address not verified"})
			return
		}
		c.Next()
	}
}

// AdminAuth guards the catalog management routes with a static bearer
// token. An empty configured token disables the routes entirely.
func AdminAuth(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminToken == "" || bearerToken(c) != adminToken {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) uint {
	return c.GetUint(userIDKey)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
