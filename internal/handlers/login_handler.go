package handlers

import (
	"net/http"

	"eyetrends-pos/internal/access"
	"eyetrends-pos/internal/auth"
	"eyetrends-pos/internal/database"
	"eyetrends-pos/internal/middleware"
	"eyetrends-pos/internal/models"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues a JWT. Unknown user and wrong
// password produce the same response on purpose.
func Login(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}

		users, err := database.Users(c.Request.Context(), store)
		if err != nil {
			respondError(c, err)
			return
		}

		var user *models.User
		for i := range users {
			if users[i].Username == input.Username {
				user = &users[i]
				break
			}
		}
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		if err := auth.CheckPassword(user.PasswordHash, input.Password); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := auth.GenerateToken(user.ID, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"user":  user.Redacted(),
			"pages": access.VisiblePages(*user),
		})
	}
}

// GetProfile returns the acting user's own record.
func GetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{
			"user":  user.Redacted(),
			"pages": access.VisiblePages(user),
		})
	}
}

// ResolveActivePage validates a page the console wants to activate.
// Direct attempts at pages outside the permission set fall back to the
// dashboard instead of erroring.
func ResolveActivePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		page := access.ResolvePage(middleware.CurrentUser(c), c.Query("page"))
		c.JSON(http.StatusOK, gin.H{"page": page})
	}
}
