package handlers

import (
	"net/http"

	"eyetrends-pos/internal/database"
	"eyetrends-pos/internal/sales"

	"github.com/gin-gonic/gin"
)

// GetSummary aggregates the dashboard figures: revenue, transaction
// count, average sale value, product and low-stock counts, recent sales.
func GetSummary(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

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

		c.JSON(http.StatusOK, sales.BuildSummary(products, history))
	}
}
