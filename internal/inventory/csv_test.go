package inventory

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"eyetrends-pos/internal/database"
	"eyetrends-pos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Brand,Model,Type,Material,Color,CostPrice,SellingPrice,Stock,MinStock,Description
Ray-Ban,Aviator Classic,Sunglasses,Metal,Gold,5000,7500,10,2,Original classics
Essilor,Varilux X,Lens,Glass,Clear,3000,4500,25,5,Progressive lens
`

func TestImportCSV(t *testing.T) {
	store := database.NewMemStore()
	ledger := NewLedger(store)
	ctx := context.Background()

	count, err := ledger.ImportCSV(ctx, strings.NewReader(sampleCSV), manager)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	products, err := ledger.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)

	rb := products[0]
	assert.Equal(t, "Ray-Ban", rb.Brand)
	assert.Equal(t, "Aviator Classic", rb.Model)
	assert.Equal(t, "Sunglasses", rb.Type)
	assert.Equal(t, 5000.0, rb.CostPrice)
	assert.Equal(t, 7500.0, rb.SellingPrice)
	assert.Equal(t, 10, rb.StockQuantity)
	assert.Equal(t, 2, rb.MinStockLevel)
	assert.Equal(t, "Original classics", rb.Description)
	assert.NotEmpty(t, rb.ID)
	assert.False(t, rb.LastUpdated.IsZero())

	// One batched write, one summary audit event.
	logs, err := database.AuditLogs(ctx, store)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.AuditCreate, logs[0].Action)
	assert.Contains(t, logs[0].Details, "Bulk imported 2 products")
}

func TestImportCSV_PrependsBeforeExisting(t *testing.T) {
	store := database.NewMemStore()
	ledger := NewLedger(store)
	ctx := context.Background()

	old, err := ledger.Upsert(ctx, frame("Gucci", "GG0061", 4), manager)
	require.NoError(t, err)

	_, err = ledger.ImportCSV(ctx, strings.NewReader(sampleCSV), manager)
	require.NoError(t, err)

	products, err := ledger.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Ray-Ban", products[0].Brand)
	assert.Equal(t, old.ID, products[2].ID, "existing stock pushed behind the import")
}

func TestImportCSV_SkipsShortAndEmptyRows(t *testing.T) {
	csvData := `Brand,Model,Type,Material,Color,CostPrice,SellingPrice,Stock,MinStock,Description
Ray-Ban,Aviator,Sunglasses,Metal,Gold,5000,7500,10,2,ok

OnlyBrand,TooShort
Essilor,Varilux,Lens,Glass,Clear,3000,4500,25,5
`
	ledger := NewLedger(database.NewMemStore())

	count, err := ledger.ImportCSV(context.Background(), strings.NewReader(csvData), manager)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "short rows skipped, 9-column row accepted without description")
}

func TestImportCSV_DefaultsOnBadNumbers(t *testing.T) {
	csvData := `Brand,Model,Type,Material,Color,CostPrice,SellingPrice,Stock,MinStock,Description
Generic,Reader,,Plastic,Black,notanumber,xx,yy,zz,cheap readers
`
	ledger := NewLedger(database.NewMemStore())

	count, err := ledger.ImportCSV(context.Background(), strings.NewReader(csvData), manager)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	products, err := ledger.List(context.Background())
	require.NoError(t, err)
	p := products[0]
	assert.Equal(t, "Frame", p.Type, "empty type defaults to Frame")
	assert.Zero(t, p.CostPrice)
	assert.Zero(t, p.SellingPrice)
	assert.Zero(t, p.StockQuantity)
	assert.Equal(t, 5, p.MinStockLevel, "minStock defaults to 5")
}

func TestImportCSV_EmptyFileImportsNothing(t *testing.T) {
	store := database.NewMemStore()
	ledger := NewLedger(store)

	count, err := ledger.ImportCSV(context.Background(), strings.NewReader(""), manager)
	require.NoError(t, err)
	assert.Zero(t, count)

	logs, err := database.AuditLogs(context.Background(), store)
	require.NoError(t, err)
	assert.Empty(t, logs, "no audit event when nothing was imported")
}

func TestExportImportRoundTrip(t *testing.T) {
	original := []models.Product{
		{ID: "p1", Brand: "Ray-Ban", Model: "Aviator", Type: "Sunglasses", Material: "Metal", Color: "Gold",
			CostPrice: 5000, SellingPrice: 7500.50, StockQuantity: 10, MinStockLevel: 2,
			Description: "Classics, with a comma and \"quotes\""},
		{ID: "p2", Brand: "Essilor", Model: "Varilux", Type: "Lens", Material: "Glass", Color: "Clear",
			CostPrice: 3000, SellingPrice: 4500, StockQuantity: 25, MinStockLevel: 5, Description: ""},
	}

	data, err := ExportCSV(original)
	require.NoError(t, err)

	ledger := NewLedger(database.NewMemStore())
	count, err := ledger.ImportCSV(context.Background(), bytes.NewReader(data), manager)
	require.NoError(t, err)
	require.Equal(t, len(original), count)

	imported, err := ledger.List(context.Background())
	require.NoError(t, err)
	require.Len(t, imported, len(original))

	// Round-trip equality on business fields; ids and timestamps differ.
	for i, want := range original {
		got := imported[i]
		assert.Equal(t, want.Brand, got.Brand)
		assert.Equal(t, want.Model, got.Model)
		assert.Equal(t, want.Type, got.Type)
		assert.Equal(t, want.Material, got.Material)
		assert.Equal(t, want.Color, got.Color)
		assert.Equal(t, want.CostPrice, got.CostPrice)
		assert.Equal(t, want.SellingPrice, got.SellingPrice)
		assert.Equal(t, want.StockQuantity, got.StockQuantity)
		assert.Equal(t, want.MinStockLevel, got.MinStockLevel)
		assert.Equal(t, want.Description, got.Description)
	}
}
