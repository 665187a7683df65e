package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"eyetrends-pos/internal/middleware"
	"eyetrends-pos/internal/sales"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ProcessSale executes a checkout and returns the sale for the receipt.
func ProcessSale(engine *sales.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sales.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		actor := middleware.CurrentUser(c)
		sale, err := engine.CreateSale(c.Request.Context(), req, actor)
		if err != nil {
			respondError(c, err)
			return
		}

		log.Info().
			Str("sale_id", sale.ID).
			Str("salesperson", actor.Username).
			Float64("total", sale.TotalAmount).
			Msg("sale completed")

		c.JSON(http.StatusOK, gin.H{"message": "Transaction completed successfully!", "sale": sale})
	}
}

// parseFilter reads report filters from the query string. Dates are
// YYYY-MM-DD; the "to" date is inclusive through end of day.
func parseFilter(c *gin.Context) (sales.Filter, error) {
	var f sales.Filter
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return f, fmt.Errorf("dates must be in YYYY-MM-DD format")
		}
		f.From = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return f, fmt.Errorf("dates must be in YYYY-MM-DD format")
		}
		f.To = t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	}
	f.ProductType = c.Query("productType")
	f.SalespersonID = c.Query("salesperson")
	f.Query = c.Query("q")
	return f, nil
}

// ListSales returns the filtered sales history, most recent first.
func ListSales(engine *sales.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, err := parseFilter(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		history, err := engine.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, filter.Apply(history))
	}
}

// ExportSales streams the filtered history as a CSV download. The
// "fields" query selects columns (comma-separated ids, empty = all).
func ExportSales(engine *sales.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, err := parseFilter(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		history, err := engine.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		var fieldIDs []string
		if raw := c.Query("fields"); raw != "" {
			fieldIDs = strings.Split(raw, ",")
		}

		data, err := sales.ExportCSV(filter.Apply(history), fieldIDs)
		if err != nil {
			respondError(c, err)
			return
		}

		filename := fmt.Sprintf("eyetrends_report_%s.csv", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	}
}
