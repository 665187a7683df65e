package inventory

import (
	"context"
	"testing"

	"eyetrends-pos/internal/database"
	"eyetrends-pos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var manager = models.User{
	ID:       "u1",
	Username: "rafiq",
	Role:     models.RoleStaff,
	FullName: "Rafiq Islam",
	Permissions: models.UserPermissions{
		CanAddInventory: true,
		AccessiblePages: []string{"dashboard", "inventory"},
	},
}

func frame(brand, model string, stock int) models.Product {
	return models.Product{
		Brand:         brand,
		Model:         model,
		Type:          "Frame",
		CostPrice:     1000,
		SellingPrice:  1500,
		StockQuantity: stock,
		MinStockLevel: 2,
	}
}

func TestUpsert_CreateAssignsIDAndPrepends(t *testing.T) {
	store := database.NewMemStore()
	ledger := NewLedger(store)
	ctx := context.Background()

	first, err := ledger.Upsert(ctx, frame("Gucci", "GG0061", 4), manager)
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.LastUpdated.IsZero())

	second, err := ledger.Upsert(ctx, frame("Prada", "PR17", 2), manager)
	require.NoError(t, err)

	products, err := ledger.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, second.ID, products[0].ID, "most recent add first")
	assert.Equal(t, first.ID, products[1].ID)

	logs, err := database.AuditLogs(ctx, store)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.AuditCreate, logs[0].Action)
	assert.Equal(t, models.EntityProduct, logs[0].Entity)
	assert.Contains(t, logs[0].Details, "Prada PR17")
}

func TestUpsert_UpdateReplacesInPlace(t *testing.T) {
	store := database.NewMemStore()
	ledger := NewLedger(store)
	ctx := context.Background()

	a, err := ledger.Upsert(ctx, frame("Gucci", "GG0061", 4), manager)
	require.NoError(t, err)
	b, err := ledger.Upsert(ctx, frame("Prada", "PR17", 2), manager)
	require.NoError(t, err)

	edited := a
	edited.SellingPrice = 1800
	updated, err := ledger.Upsert(ctx, edited, manager)
	require.NoError(t, err)
	assert.Equal(t, a.ID, updated.ID)
	assert.True(t, updated.LastUpdated.After(a.LastUpdated) || updated.LastUpdated.Equal(a.LastUpdated))

	products, err := ledger.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, b.ID, products[0].ID, "ordering unchanged by update")
	assert.Equal(t, 1800.0, products[1].SellingPrice)

	logs, err := database.AuditLogs(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, models.AuditUpdate, logs[0].Action)
}

func TestUpsert_UnknownIDFails(t *testing.T) {
	ledger := NewLedger(database.NewMemStore())

	p := frame("Gucci", "GG0061", 4)
	p.ID = "PROD-MISSING"
	_, err := ledger.Upsert(context.Background(), p, manager)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestRemove(t *testing.T) {
	store := database.NewMemStore()
	ledger := NewLedger(store)
	ctx := context.Background()

	a, err := ledger.Upsert(ctx, frame("Gucci", "GG0061", 4), manager)
	require.NoError(t, err)

	require.NoError(t, ledger.Remove(ctx, a.ID, manager))

	products, err := ledger.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	logs, err := database.AuditLogs(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, models.AuditDelete, logs[0].Action)
	assert.Contains(t, logs[0].Details, "Gucci GG0061")

	assert.ErrorIs(t, ledger.Remove(ctx, a.ID, manager), ErrProductNotFound)
}

func TestLowStockCount(t *testing.T) {
	products := []models.Product{
		{StockQuantity: 0, MinStockLevel: 2},
		{StockQuantity: 2, MinStockLevel: 2}, // boundary counts as low
		{StockQuantity: 3, MinStockLevel: 2},
	}
	assert.Equal(t, 2, LowStockCount(products))
}
