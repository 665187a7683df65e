package handlers

import (
	"errors"
	"net/http"

	"eyetrends-pos/internal/auth"
	"eyetrends-pos/internal/database"
	"eyetrends-pos/internal/inventory"
	"eyetrends-pos/internal/sales"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError maps domain errors onto HTTP responses. Validation errors
// carry their own user-facing message; store failures collapse to one
// generic "connection failed" message with no retry.
func respondError(c *gin.Context, err error) {
	var stockErr *sales.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": stockErr.Error()})
	case errors.Is(err, sales.ErrInvalidProduct):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a valid product."})
	case errors.Is(err, inventory.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, auth.ErrAuthFailure):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, database.ErrStoreUnavailable):
		log.Error().Err(err).Msg("record store failure")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Connection failed. Please try again."})
	default:
		log.Error().Err(err).Msg("unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
