package inventory

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"eyetrends-pos/internal/audit"
	"eyetrends-pos/internal/database"
	"eyetrends-pos/internal/models"
)

// csvHeader is the fixed column order for both import and export.
var csvHeader = []string{
	"Brand", "Model", "Type", "Material", "Color",
	"CostPrice", "SellingPrice", "Stock", "MinStock", "Description",
}

// minImportColumns - description is the only optional column.
const minImportColumns = 9

// ImportCSV reads positional product rows, skips the header and any short
// or empty rows, and prepends all imported products in one batched write
// plus one summary audit event. Returns the number of imported rows.
func (l *Ledger) ImportCSV(ctx context.Context, r io.Reader, actor models.User) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var items []models.Product
	first := true
	for {
		cols, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row: skip, keep going.
			continue
		}
		if first {
			first = false
			continue // header row
		}
		if len(cols) < minImportColumns {
			continue
		}

		p := models.Product{
			ID:            NewProductID(),
			Brand:         cols[0],
			Model:         cols[1],
			Type:          cols[2],
			Material:      cols[3],
			Color:         cols[4],
			CostPrice:     parseFloat(cols[5], 0),
			SellingPrice:  parseFloat(cols[6], 0),
			StockQuantity: parseInt(cols[7], 0),
			MinStockLevel: parseInt(cols[8], 5),
			LastUpdated:   time.Now(),
		}
		if p.Type == "" {
			p.Type = "Frame"
		}
		if len(cols) > 9 {
			p.Description = cols[9]
		}
		items = append(items, p)
	}

	if len(items) == 0 {
		return 0, nil
	}

	err := l.store.Transact(ctx, func(tx database.Store) error {
		products, err := database.Products(ctx, tx)
		if err != nil {
			return err
		}
		if err := database.SaveProducts(ctx, tx, append(items, products...)); err != nil {
			return err
		}
		return audit.Append(ctx, tx, actor, models.AuditCreate, models.EntityProduct,
			fmt.Sprintf("Bulk imported %d products via CSV.", len(items)))
	})
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// ExportCSV serializes the ledger with the fixed header row. Fields are
// properly quoted, so commas in descriptions round-trip.
func ExportCSV(products []models.Product) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, p := range products {
		row := []string{
			p.Brand,
			p.Model,
			p.Type,
			p.Material,
			p.Color,
			strconv.FormatFloat(p.CostPrice, 'f', -1, 64),
			strconv.FormatFloat(p.SellingPrice, 'f', -1, 64),
			strconv.Itoa(p.StockQuantity),
			strconv.Itoa(p.MinStockLevel),
			p.Description,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func parseFloat(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
