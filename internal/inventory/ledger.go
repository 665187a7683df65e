// Package inventory owns the product ledger: the product records and their
// live stock quantities. Stock is mutated only by a completed sale or a
// manual edit here.
package inventory

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

// ErrProductNotFound - the referenced product id is not in the ledger.
var ErrProductNotFound = errors.New("product not found")

// Ledger reads and mutates the product collection. Every mutation runs in
// a store transaction together with its audit entry.
type Ledger struct {
	store database.Store
}

func NewLedger(store database.Store) *Ledger {
	return &Ledger{store: store}
}

// List returns products in storage order, most recent add first.
func (l *Ledger) List(ctx context.Context) ([]models.Product, error) {
	return database.Products(ctx, l.store)
}

// Upsert creates the product when its id is empty (new id, prepended) or
// replaces the matching record in place. LastUpdated is always stamped.
func (l *Ledger) Upsert(ctx context.Context, p models.Product, actor models.User) (models.Product, error) {
	err := l.store.Transact(ctx, func(tx database.Store) error {
		products, err := database.Products(ctx, tx)
		if err != nil {
			return err
		}

		p.LastUpdated = time.Now()

		if p.ID == "" {
			p.ID = NewProductID()
			products = append([]models.Product{p}, products...)
			if err := database.SaveProducts(ctx, tx, products); err != nil {
				return err
			}
			return audit.Append(ctx, tx, actor, models.AuditCreate, models.EntityProduct,
				fmt.Sprintf("Added product: %s %s (Stock: %d)", p.Brand, p.Model, p.StockQuantity))
		}

		replaced := false
		for i := range products {
			if products[i].ID == p.ID {
				products[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			return ErrProductNotFound
		}
		if err := database.SaveProducts(ctx, tx, products); err != nil {
			return err
		}
		return audit.Append(ctx, tx, actor, models.AuditUpdate, models.EntityProduct,
			fmt.Sprintf("Updated product: %s %s", p.Brand, p.Model))
	})
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Remove deletes the product from the ledger. Authorization is the
// caller's job; the ledger only checks existence.
func (l *Ledger) Remove(ctx context.Context, id string, actor models.User) error {
	return l.store.Transact(ctx, func(tx database.Store) error {
		products, err := database.Products(ctx, tx)
		if err != nil {
			return err
		}

		kept := products[:0]
		var removed *models.Product
		for _, p := range products {
			if p.ID == id {
				removed = &p
				continue
			}
			kept = append(kept, p)
		}
		if removed == nil {
			return ErrProductNotFound
		}

		if err := database.SaveProducts(ctx, tx, kept); err != nil {
			return err
		}
		return audit.Append(ctx, tx, actor, models.AuditDelete, models.EntityProduct,
			fmt.Sprintf("Removed product: %s %s", removed.Brand, removed.Model))
	})
}

// LowStockCount counts products at or below their reorder level.
func LowStockCount(products []models.Product) int {
	n := 0
	for _, p := range products {
		if p.LowStock() {
			n++
		}
	}
	return n
}

// NewProductID returns a fresh ledger id.
func NewProductID() string {
	return fmt.Sprintf("PROD-%s", strings.ToUpper(uuid.NewString()[:8]))
}
