package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mustafazaki616/IndustriTrack/internal/models"
	"github.com/mustafazaki616/IndustriTrack/internal/repository"
)

func newInventoryService(t *testing.T) InventoryService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.InventoryItem{}, &models.StockOut{}))

	return NewInventoryService(repository.NewInventoryRepository(db))
}

func TestRecordStockOutDecrementsItem(t *testing.T) {
	svc := newInventoryService(t)

	item := &models.InventoryItem{ItemName: "Denim Fabric", Quantity: 100, Unit: "yards"}
	require.NoError(t, svc.CreateItem(item))

	out := &models.StockOut{Product: "Denim Fabric", Quantity: 30, Buyer: "Beta Textiles", Price: 12.75}
	require.NoError(t, svc.RecordStockOut(out))

	assert.InDelta(t, 30*12.75, out.Total, 0.001)
	assert.False(t, out.Date.IsZero())

	updated, err := svc.GetItemByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 70, updated.Quantity)
}

func TestRecordStockOutClampsAtZero(t *testing.T) {
	svc := newInventoryService(t)

	item := &models.InventoryItem{ItemName: "Suede Material", Quantity: 10}
	require.NoError(t, svc.CreateItem(item))

	require.NoError(t, svc.RecordStockOut(&models.StockOut{Product: "Suede Material", Quantity: 25}))

	updated, err := svc.GetItemByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)
}

func TestRecordStockOutWithoutMatchingItem(t *testing.T) {
	svc := newInventoryService(t)

	require.NoError(t, svc.RecordStockOut(&models.StockOut{Product: "Unknown Fabric", Quantity: 5}))

	outs, err := svc.GetAllStockOuts()
	require.NoError(t, err)
	assert.Len(t, outs, 1)
}

func TestGetLowStockItems(t *testing.T) {
	svc := newInventoryService(t)

	min := 50
	low := &models.InventoryItem{ItemName: "Premium Leather", Quantity: 40, MinStock: &min}
	healthy := &models.InventoryItem{ItemName: "Denim Fabric", Quantity: 500, MinStock: &min}
	untracked := &models.InventoryItem{ItemName: "Buttons", Quantity: 1}
	require.NoError(t, svc.CreateItem(low))
	require.NoError(t, svc.CreateItem(healthy))
	require.NoError(t, svc.CreateItem(untracked))

	items, err := svc.GetLowStockItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Premium Leather", items[0].ItemName)
}
