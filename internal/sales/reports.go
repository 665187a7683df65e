package sales

import (
	"strings"
	"time"

	"eyetrends-pos/internal/inventory"
	"eyetrends-pos/internal/models"
)

// Filter narrows the sales history for the reports screen. Zero values
// mean "no constraint".
type Filter struct {
	From          time.Time
	To            time.Time
	ProductType   string
	SalespersonID string
	Query         string
}

// Apply returns the sales matching every set constraint, preserving the
// most-recent-first input order.
func (f Filter) Apply(sales []models.Sale) []models.Sale {
	out := make([]models.Sale, 0, len(sales))
	for _, s := range sales {
		if !f.From.IsZero() && s.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && s.Date.After(f.To) {
			continue
		}
		if f.ProductType != "" && s.ProductType != f.ProductType {
			continue
		}
		if f.SalespersonID != "" && s.SalespersonID != f.SalespersonID {
			continue
		}
		if f.Query != "" && !matchesQuery(s, f.Query) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesQuery(s models.Sale, q string) bool {
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(s.ID), q) ||
		strings.Contains(strings.ToLower(s.CustomerName), q) ||
		strings.Contains(strings.ToLower(s.ProductName), q)
}

// Summary is the dashboard payload.
type Summary struct {
	TotalRevenue      float64       `json:"totalRevenue"`
	TotalTransactions int           `json:"totalTransactions"`
	AverageSaleValue  float64       `json:"averageSaleValue"`
	ProductCount      int           `json:"productCount"`
	LowStockCount     int           `json:"lowStockCount"`
	RecentSales       []models.Sale `json:"recentSales"`
}

const recentSalesLimit = 10

// BuildSummary aggregates the current snapshots into dashboard figures.
func BuildSummary(products []models.Product, sales []models.Sale) Summary {
	s := Summary{
		TotalTransactions: len(sales),
		ProductCount:      len(products),
		LowStockCount:     inventory.LowStockCount(products),
	}
	for _, sale := range sales {
		s.TotalRevenue += sale.TotalAmount
	}
	if s.TotalTransactions > 0 {
		s.AverageSaleValue = s.TotalRevenue / float64(s.TotalTransactions)
	}
	if len(sales) > recentSalesLimit {
		s.RecentSales = sales[:recentSalesLimit]
	} else {
		s.RecentSales = sales
	}
	return s
}
