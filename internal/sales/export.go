package sales

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"eyetrends-pos/internal/models"
)

// ExportField is one selectable column of the sales CSV export.
type ExportField struct {
	ID     string
	Header string
	Value  func(models.Sale) string
}

// ExportFields lists the available columns in export order.
var ExportFields = []ExportField{
	{"id", "Sale ID", func(s models.Sale) string { return s.ID }},
	{"date", "Date", func(s models.Sale) string { return s.Date.Format(time.RFC3339) }},
	{"customer", "Customer", func(s models.Sale) string { return s.CustomerName }},
	{"contact", "Contact", func(s models.Sale) string { return s.CustomerContact }},
	{"product", "Product", func(s models.Sale) string { return s.ProductName }},
	{"type", "Type", func(s models.Sale) string { return s.ProductType }},
	{"quantity", "Quantity", func(s models.Sale) string { return strconv.Itoa(s.Quantity) }},
	{"total", "Total Amount", func(s models.Sale) string {
		return strconv.FormatFloat(s.TotalAmount, 'f', 2, 64)
	}},
	{"salesperson", "Salesperson", func(s models.Sale) string { return s.SalespersonName }},
}

// ExportCSV serializes sales with a fixed header row. fieldIDs selects and
// is restricted to known columns; empty means all columns.
func ExportCSV(sales []models.Sale, fieldIDs []string) ([]byte, error) {
	fields := selectFields(fieldIDs)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = f.Header
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	row := make([]string, len(fields))
	for _, s := range sales {
		for i, f := range fields {
			row[i] = f.Value(s)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func selectFields(ids []string) []ExportField {
	if len(ids) == 0 {
		return ExportFields
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var fields []ExportField
	for _, f := range ExportFields {
		if wanted[f.ID] {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		return ExportFields
	}
	return fields
}
