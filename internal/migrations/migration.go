package migrations

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mustafazaki616/IndustriTrack/internal/models"
)

// RunMigrations creates or updates the schema and optionally seeds demo data.
func RunMigrations(db *gorm.DB, seed bool, logger *zap.Logger) error {
	logger.Info("running database migrations")

	err := db.AutoMigrate(
		&models.Customer{},
		&models.Order{},
		&models.Production{},
		&models.ProductionStage{},
		&models.Inspection{},
		&models.Payment{},
		&models.Shipment{},
		&models.InventoryItem{},
		&models.StockOut{},
		&models.Report{},
		&models.Setting{},
	)
	if err != nil {
		return err
	}

	if seed {
		if err := seedDefaultData(db, logger); err != nil {
			logger.Warn("failed to seed default data", zap.Error(err))
		}
	}

	logger.Info("database migrations completed")
	return nil
}

// seedDefaultData populates an empty database with a small demo data set.
// Each table is only seeded when it has no rows.
func seedDefaultData(db *gorm.DB, logger *zap.Logger) error {
	now := time.Now().UTC()

	var orderCount int64
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		return err
	}
	if orderCount == 0 {
		logger.Info("seeding demo orders")
		price1, price2, price3 := 299.99, 89.99, 199.99
		orders := []models.Order{
			{
				Customer:      "Acme Corp",
				Article:       "Leather Jacket",
				Sizes:         models.SizeMap{"XS": 10, "S": 20, "M": 30, "L": 25, "XL": 15},
				TotalQuantity: 100,
				Status:        models.OrderInProduction,
				Price:         &price1,
				Notes:         "Premium leather quality required",
			},
			{
				Customer:      "Beta Textiles",
				Article:       "Denim Shirt",
				Sizes:         models.SizeMap{"XS": 5, "S": 15, "M": 25, "L": 20, "XL": 10},
				TotalQuantity: 75,
				Status:        models.OrderCompleted,
				Price:         &price2,
				Notes:         "Standard denim finish",
			},
			{
				Customer:      "Fashion Forward",
				Article:       "Suede Vest",
				Sizes:         models.SizeMap{"S": 12, "M": 18, "L": 15, "XL": 8},
				TotalQuantity: 53,
				Status:        models.OrderPending,
				Price:         &price3,
				Notes:         "Custom color: burgundy",
			},
		}
		if err := db.Create(&orders).Error; err != nil {
			return err
		}
	}

	var customerCount int64
	if err := db.Model(&models.Customer{}).Count(&customerCount).Error; err != nil {
		return err
	}
	if customerCount == 0 {
		customers := []models.Customer{
			{
				Name:          "Acme Corporation",
				Email:         "orders@acme.com",
				Phone:         "+1-555-0123",
				Address:       "123 Business Ave, New York, NY 10001",
				Company:       "Acme Corp",
				ContactPerson: "John Smith",
				IsActive:      true,
			},
			{
				Name:          "Beta Textiles Ltd",
				Email:         "purchasing@betatextiles.com",
				Phone:         "+1-555-0456",
				Address:       "456 Industry Blvd, Los Angeles, CA 90210",
				Company:       "Beta Textiles",
				ContactPerson: "Sarah Johnson",
				IsActive:      true,
			},
			{
				Name:          "Fashion Forward Inc",
				Email:         "orders@fashionforward.com",
				Phone:         "+1-555-0789",
				Address:       "789 Style Street, Miami, FL 33101",
				Company:       "Fashion Forward",
				ContactPerson: "Mike Davis",
				IsActive:      true,
			},
		}
		if err := db.Create(&customers).Error; err != nil {
			return err
		}
	}

	var inventoryCount int64
	if err := db.Model(&models.InventoryItem{}).Count(&inventoryCount).Error; err != nil {
		return err
	}
	if inventoryCount == 0 {
		minLeather, maxLeather, costLeather := 100, 1000, 25.50
		minDenim, maxDenim, costDenim := 200, 1500, 12.75
		minSuede, maxSuede, costSuede := 50, 500, 35.00
		items := []models.InventoryItem{
			{
				ItemName: "Premium Leather",
				Category: "Raw Materials",
				Location: "Warehouse A",
				Quantity: 500,
				Unit:     "sq ft",
				MinStock: &minLeather,
				MaxStock: &maxLeather,
				Supplier: "LeatherCo Inc",
				Cost:     &costLeather,
				IsActive: true,
			},
			{
				ItemName: "Denim Fabric",
				Category: "Raw Materials",
				Location: "Warehouse B",
				Quantity: 800,
				Unit:     "yards",
				MinStock: &minDenim,
				MaxStock: &maxDenim,
				Supplier: "DenimWorld",
				Cost:     &costDenim,
				IsActive: true,
			},
			{
				ItemName: "Suede Material",
				Category: "Raw Materials",
				Location: "Warehouse A",
				Quantity: 300,
				Unit:     "sq ft",
				MinStock: &minSuede,
				MaxStock: &maxSuede,
				Supplier: "SuedeSupply",
				Cost:     &costSuede,
				IsActive: true,
			},
		}
		if err := db.Create(&items).Error; err != nil {
			return err
		}
	}

	var settingCount int64
	if err := db.Model(&models.Setting{}).Count(&settingCount).Error; err != nil {
		return err
	}
	if settingCount == 0 {
		settings := []models.Setting{
			{Key: "FactoryName", Value: "IndustriTrack", Description: "Name of the factory", Category: "General", IsActive: true},
			{Key: "Timezone", Value: "UTC+0", Description: "Factory timezone", Category: "General", IsActive: true},
			{Key: "DefaultCurrency", Value: "USD", Description: "Default currency for transactions", Category: "Financial", IsActive: true},
			{Key: "LowStockThreshold", Value: "10", Description: "Minimum stock level before alert", Category: "Inventory", IsActive: true},
		}
		if err := db.Create(&settings).Error; err != nil {
			return err
		}
	}

	var shipmentCount int64
	if err := db.Model(&models.Shipment{}).Count(&shipmentCount).Error; err != nil {
		return err
	}
	if shipmentCount == 0 {
		cost1, cost2, cost3 := 25.99, 19.99, 32.50
		eta1 := now.AddDate(0, 0, 3)
		eta2 := now.AddDate(0, 0, -1)
		eta3 := now.AddDate(0, 0, 7)
		delivered := now.AddDate(0, 0, -1)
		shipments := []models.Shipment{
			{
				OrderID:           1,
				Status:            models.ShipmentShipped,
				TrackingNumber:    "TRK123456789",
				ShippingAddress:   "123 Business Ave, New York, NY 10001",
				Carrier:           "FedEx",
				ShippingCost:      &cost1,
				EstimatedDelivery: &eta1,
			},
			{
				OrderID:           2,
				Status:            models.ShipmentDelivered,
				TrackingNumber:    "TRK987654321",
				ShippingAddress:   "456 Industry Blvd, Los Angeles, CA 90210",
				Carrier:           "UPS",
				ShippingCost:      &cost2,
				EstimatedDelivery: &eta2,
				ActualDelivery:    &delivered,
			},
			{
				OrderID:           3,
				Status:            models.ShipmentPending,
				ShippingAddress:   "789 Style Street, Miami, FL 33101",
				Carrier:           "DHL",
				ShippingCost:      &cost3,
				EstimatedDelivery: &eta3,
			},
		}
		if err := db.Create(&shipments).Error; err != nil {
			return err
		}
	}

	return nil
}
