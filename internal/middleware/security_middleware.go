package middleware

import (
	"net/http"
	"strings"

	"eyetrends-pos/internal/access"
	"eyetrends-pos/internal/auth"
	"eyetrends-pos/internal/database"
	"eyetrends-pos/internal/models"

	"github.com/gin-gonic/gin"
)

const userKey = "currentUser"

// AuthMiddleware validates the bearer token and loads the acting user's
// record from the store. Loading per request (rather than trusting claims)
// means permission edits take effect on the very next call.
func AuthMiddleware(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with Bearer"})
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		users, err := database.Users(c.Request.Context(), store)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Connection failed. Please try again."})
			c.Abort()
			return
		}

		var current *models.User
		for i := range users {
			if users[i].ID == claims.UserID {
				current = &users[i]
				break
			}
		}
		if current == nil {
			// Account deleted since the token was issued.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(userKey, *current)
		c.Next()
	}
}

// CurrentUser returns the acting user loaded by AuthMiddleware.
func CurrentUser(c *gin.Context) models.User {
	return c.MustGet(userKey).(models.User)
}

// RequireRole rejects callers without the given role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c).Role != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePage rejects callers whose permission set does not include the
// page this route belongs to.
func RequirePage(pageID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !access.CanAccessPage(CurrentUser(c), pageID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireInventoryWrite gates product create/edit on the canAddInventory
// flag.
func RequireInventoryWrite() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !access.CanAddInventory(CurrentUser(c)) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to modify inventory"})
			c.Abort()
			return
		}
		c.Next()
	}
}
