package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mustafazaki616/IndustriTrack/internal/cache"
	"github.com/mustafazaki616/IndustriTrack/internal/config"
	"github.com/mustafazaki616/IndustriTrack/internal/database"
	"github.com/mustafazaki616/IndustriTrack/internal/handlers"
	"github.com/mustafazaki616/IndustriTrack/internal/logger"
	"github.com/mustafazaki616/IndustriTrack/internal/migrations"
	"github.com/mustafazaki616/IndustriTrack/internal/repository"
	"github.com/mustafazaki616/IndustriTrack/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := migrations.RunMigrations(db, cfg.SeedData, log); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	// Redis is optional; the dashboard falls back to direct queries when
	// no cache is configured.
	var cacheClient *cache.Client
	if cfg.RedisURL != "" {
		cacheClient, err = cache.Initialize(cfg.RedisURL)
		if err != nil {
			log.Warn("failed to connect to redis, caching disabled", zap.Error(err))
			cacheClient = nil
		} else {
			defer cacheClient.Close()
		}
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productionRepo := repository.NewProductionRepository(db)
	stageRepo := repository.NewProductionStageRepository(db)
	inspectionRepo := repository.NewInspectionRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	shipmentRepo := repository.NewShipmentRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	reportRepo := repository.NewReportRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Initialize services
	customerService := services.NewCustomerService(customerRepo)
	orderService := services.NewOrderService(orderRepo, productionRepo, stageRepo, log)
	productionService := services.NewProductionService(productionRepo, stageRepo, orderRepo, inspectionRepo, shipmentRepo, log)
	inspectionService := services.NewInspectionService(inspectionRepo)
	paymentService := services.NewPaymentService(paymentRepo)
	shipmentService := services.NewShipmentService(shipmentRepo)
	inventoryService := services.NewInventoryService(inventoryRepo)
	reportService := services.NewReportService(reportRepo, productionRepo, stageRepo, orderRepo)
	settingService := services.NewSettingService(settingRepo)
	dashboardService := services.NewDashboardService(
		orderRepo, productionRepo, stageRepo, shipmentRepo,
		paymentRepo, inspectionRepo, inventoryRepo,
		cacheClient, time.Duration(cfg.CacheTTL)*time.Second, log,
	)

	// An order moved to In Production outside the start endpoint still
	// gets its stage set created.
	orderService.AddStatusListener(productionService)

	// Initialize handlers
	customerHandler := handlers.NewCustomerHandler(customerService)
	orderHandler := handlers.NewOrderHandler(orderService)
	productionHandler := handlers.NewProductionHandler(productionService)
	inspectionHandler := handlers.NewInspectionHandler(inspectionService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	shipmentHandler := handlers.NewShipmentHandler(shipmentService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	reportHandler := handlers.NewReportHandler(reportService)
	settingHandler := handlers.NewSettingHandler(settingService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Setup routes
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/customers", customerHandler.ListCustomers)
		api.POST("/customers", customerHandler.CreateCustomer)
		api.PUT("/customers/:id", customerHandler.UpdateCustomer)
		api.DELETE("/customers/:id", customerHandler.DeleteCustomer)

		api.GET("/orders", orderHandler.ListOrders)
		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.PUT("/orders/:id", orderHandler.UpdateOrder)
		api.DELETE("/orders/:id", orderHandler.DeleteOrder)
		api.GET("/orders/:id/stages", productionHandler.GetStagesForOrder)

		api.GET("/production", productionHandler.ListProductions)
		api.POST("/production", productionHandler.CreateProduction)
		api.GET("/production/:id", productionHandler.GetProduction)
		api.PUT("/production/:id", productionHandler.UpdateProduction)
		api.DELETE("/production/:id", productionHandler.DeleteProduction)
		api.POST("/production/start/:orderId", productionHandler.StartProduction)
		api.POST("/production/fix-missing-stages", productionHandler.FixMissingStages)

		api.POST("/stages/update", productionHandler.UpdateStage)
		api.GET("/stages/overdue", productionHandler.GetOverdueStages)
		api.POST("/stages/sweep", productionHandler.SweepOverdue)

		api.GET("/inspections", inspectionHandler.ListInspections)
		api.POST("/inspections", inspectionHandler.CreateInspection)
		api.GET("/inspections/:id", inspectionHandler.GetInspection)
		api.PUT("/inspections/:id", inspectionHandler.UpdateInspection)
		api.DELETE("/inspections/:id", inspectionHandler.DeleteInspection)

		api.GET("/payments", paymentHandler.ListPayments)
		api.POST("/payments", paymentHandler.CreatePayment)
		api.GET("/payments/:id", paymentHandler.GetPayment)
		api.PUT("/payments/:id", paymentHandler.UpdatePayment)
		api.DELETE("/payments/:id", paymentHandler.DeletePayment)

		api.GET("/shipments", shipmentHandler.ListShipments)
		api.POST("/shipments", shipmentHandler.CreateShipment)
		api.GET("/shipments/:id", shipmentHandler.GetShipment)
		api.PUT("/shipments/:id", shipmentHandler.UpdateShipment)
		api.DELETE("/shipments/:id", shipmentHandler.DeleteShipment)

		api.GET("/inventory", inventoryHandler.ListItems)
		api.POST("/inventory", inventoryHandler.CreateItem)
		api.GET("/inventory/low-stock", inventoryHandler.ListLowStock)
		api.GET("/inventory/:id", inventoryHandler.GetItem)
		api.PUT("/inventory/:id", inventoryHandler.UpdateItem)
		api.DELETE("/inventory/:id", inventoryHandler.DeleteItem)
		api.GET("/stockout", inventoryHandler.ListStockOuts)
		api.POST("/stockout", inventoryHandler.CreateStockOut)

		api.GET("/reports", reportHandler.ListReports)
		api.POST("/reports", reportHandler.CreateReport)
		api.GET("/reports/:id", reportHandler.GetReport)
		api.PUT("/reports/:id", reportHandler.UpdateReport)
		api.DELETE("/reports/:id", reportHandler.DeleteReport)
		api.POST("/reports/generate/:productionId", reportHandler.GenerateProductionReport)

		api.GET("/settings", settingHandler.ListSettings)
		api.POST("/settings", settingHandler.CreateSetting)
		api.GET("/settings/:id", settingHandler.GetSetting)
		api.PUT("/settings/:id", settingHandler.UpdateSetting)
		api.DELETE("/settings/:id", settingHandler.DeleteSetting)

		api.GET("/dashboard/summary", dashboardHandler.GetSummary)
	}

	// Background overdue sweep
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.SweepInterval > 0 {
		go runOverdueSweep(ctx, productionService, time.Duration(cfg.SweepInterval)*time.Minute, log)
	}

	// Start server
	log.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

// runOverdueSweep periodically marks started, past-deadline stages as Overdue.
func runOverdueSweep(ctx context.Context, productionService services.ProductionService, interval time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := productionService.SweepOverdue()
			if err != nil {
				log.Error("overdue sweep failed", zap.Error(err))
				continue
			}
			if count > 0 {
				log.Info("overdue sweep marked stages", zap.Int("count", count))
			}
		}
	}
}
