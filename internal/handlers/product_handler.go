package handlers

import (
	"fmt"
	"net/http"
	"time"

	"eyetrends-pos/internal/database"
	"eyetrends-pos/internal/inventory"
	"eyetrends-pos/internal/middleware"
	"eyetrends-pos/internal/models"

	"github.com/gin-gonic/gin"
)

// ProductInput is the editable subset of a product. Ids and timestamps
// are assigned server-side.
type ProductInput struct {
	Brand         string  `json:"brand" binding:"required"`
	Model         string  `json:"model" binding:"required"`
	Type          string  `json:"type" binding:"required"`
	Material      string  `json:"material"`
	Color         string  `json:"color"`
	CostPrice     float64 `json:"costPrice"`
	SellingPrice  float64 `json:"sellingPrice"`
	StockQuantity int     `json:"stockQuantity"`
	MinStockLevel int     `json:"minStockLevel"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"imageUrl"`
}

func (in ProductInput) validate() error {
	for _, t := range models.ProductTypes {
		if in.Type == t {
			if in.CostPrice < 0 || in.SellingPrice < 0 || in.StockQuantity < 0 || in.MinStockLevel < 0 {
				return fmt.Errorf("prices and quantities cannot be negative")
			}
			return nil
		}
	}
	return fmt.Errorf("unknown product type %q", in.Type)
}

func (in ProductInput) toProduct(id string) models.Product {
	return models.Product{
		ID:            id,
		Brand:         in.Brand,
		Model:         in.Model,
		Type:          in.Type,
		Material:      in.Material,
		Color:         in.Color,
		CostPrice:     in.CostPrice,
		SellingPrice:  in.SellingPrice,
		StockQuantity: in.StockQuantity,
		MinStockLevel: in.MinStockLevel,
		Description:   in.Description,
		ImageURL:      in.ImageURL,
	}
}

// ListProducts returns the ledger, most recent add first.
func ListProducts(ledger *inventory.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := ledger.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// AddProduct creates a new ledger entry.
func AddProduct(ledger *inventory.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}
		if err := input.validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := ledger.Upsert(c.Request.Context(), input.toProduct(""), middleware.CurrentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// UpdateProduct replaces an existing ledger entry.
func UpdateProduct(ledger *inventory.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}
		if err := input.validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updated, err := ledger.Upsert(c.Request.Context(), input.toProduct(c.Param("id")), middleware.CurrentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": updated})
	}
}

// DeleteProduct removes a product. The route is admin-only.
func DeleteProduct(ledger *inventory.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := ledger.Remove(c.Request.Context(), c.Param("id"), middleware.CurrentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

// ImportProducts bulk-creates products from an uploaded CSV file.
func ImportProducts(ledger *inventory.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
			return
		}
		defer f.Close()

		count, err := ledger.ImportCSV(c.Request.Context(), f, middleware.CurrentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"imported": count, "message": fmt.Sprintf("%d products imported successfully!", count)})
	}
}

// ExportProducts streams the ledger as a CSV download.
func ExportProducts(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := database.Products(c.Request.Context(), store)
		if err != nil {
			respondError(c, err)
			return
		}

		data, err := inventory.ExportCSV(products)
		if err != nil {
			respondError(c, err)
			return
		}

		filename := fmt.Sprintf("eyetrends_inventory_%s.csv", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	}
}
