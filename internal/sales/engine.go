// Package sales is the sale transaction engine: it validates a proposed
// sale against current stock, freezes the total at the moment of sale,
// decrements the ledger, prepends the sale record and appends the audit
// event — all inside one store transaction, so the ledger and the sales
// history cannot diverge.
package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eyetrends-pos/internal/audit"
	"eyetrends-pos/internal/database"
	"eyetrends-pos/internal/models"

	"github.com/google/uuid"
)

// ErrInvalidProduct - the sale references a product id that is not in the
// ledger.
var ErrInvalidProduct = errors.New("please select a valid product")

// InsufficientStockError reports the exact remaining quantity so the
// message can be shown to the salesperson as-is.
type InsufficientStockError struct {
	Remaining int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock! Only %d remaining.", e.Remaining)
}

// Request is a proposed sale. Customer fields are free text and not
// format-checked.
type Request struct {
	ProductID       string `json:"productId" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required"`
	CustomerName    string `json:"customerName"`
	CustomerContact string `json:"customerContact"`
}

// Engine executes sale transactions against the record store.
type Engine struct {
	store database.Store
	now   func() time.Time
	newID func() string
}

func NewEngine(store database.Store) *Engine {
	return &Engine{store: store, now: time.Now, newID: NewSaleID}
}

// CreateSale validates and executes a sale on behalf of actor, returning
// the created record for receipt display.
//
// Not idempotent: identical calls create distinct sales and decrement
// stock twice. The console disables re-submission while processing.
func (e *Engine) CreateSale(ctx context.Context, req Request, actor models.User) (models.Sale, error) {
	var sale models.Sale

	err := e.store.Transact(ctx, func(tx database.Store) error {
		products, err := database.Products(ctx, tx)
		if err != nil {
			return err
		}

		idx := -1
		for i := range products {
			if products[i].ID == req.ProductID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrInvalidProduct
		}
		product := products[idx]

		if req.Quantity < 1 || req.Quantity > product.StockQuantity {
			return &InsufficientStockError{Remaining: product.StockQuantity}
		}

		sale = models.Sale{
			ID:              e.newID(),
			ProductID:       product.ID,
			ProductName:     fmt.Sprintf("%s %s", product.Brand, product.Model),
			ProductType:     product.Type,
			Quantity:        req.Quantity,
			TotalAmount:     product.SellingPrice * float64(req.Quantity),
			CustomerName:    req.CustomerName,
			CustomerContact: req.CustomerContact,
			Date:            e.now(),
			SalespersonID:   actor.ID,
			SalespersonName: actor.FullName,
		}

		products[idx].StockQuantity -= req.Quantity
		if err := database.SaveProducts(ctx, tx, products); err != nil {
			return err
		}

		existing, err := database.Sales(ctx, tx)
		if err != nil {
			return err
		}
		if err := database.SaveSales(ctx, tx, append([]models.Sale{sale}, existing...)); err != nil {
			return err
		}

		return audit.Append(ctx, tx, actor, models.AuditCreate, models.EntitySale,
			fmt.Sprintf("Finalized sale %s for %s: %s (Qty: %d, Total: %s%.2f)",
				sale.ID, sale.CustomerName, sale.ProductName, sale.Quantity,
				models.Currency, sale.TotalAmount))
	})
	if err != nil {
		return models.Sale{}, err
	}
	return sale, nil
}

// List returns the sales history, most recent first.
func (e *Engine) List(ctx context.Context) ([]models.Sale, error) {
	return database.Sales(ctx, e.store)
}

// NewSaleID returns a short, human-presentable receipt id.
func NewSaleID() string {
	return fmt.Sprintf("ET-%s", strings.ToUpper(uuid.NewString()[:6]))
}
