package handlers

import (
	"net/http"

	"eyetrends-pos/internal/ai"
	"eyetrends-pos/internal/database"

	"github.com/gin-gonic/gin"
)

// GetInsights returns the AI narrative summary of the business data.
// Failures degrade to placeholder text; this endpoint never errors on
// the AI path itself.
func GetInsights(store database.Store, apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		cfg, err := database.Config(ctx, store)
		if err != nil {
			respondError(c, err)
			return
		}
		if !cfg.EnableGeminiInsights {
			c.JSON(http.StatusOK, gin.H{"insights": ai.FallbackUnavailable, "enabled": false})
			return
		}

		products, err := database.Products(ctx, store)
		if err != nil {
			respondError(c, err)
			return
		}
		history, err := database.Sales(ctx, store)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"insights": ai.BusinessInsights(ctx, apiKey, products, history),
			"enabled":  true,
		})
	}
}
