package services

import (
	"errors"
	"time"

	"github.com/mustafazaki616/IndustriTrack/internal/cache"
	"github.com/mustafazaki616/IndustriTrack/internal/models"
	"github.com/mustafazaki616/IndustriTrack/internal/repository"

	"go.uber.org/zap"
)

const dashboardCacheKey = "dashboard:summary"

// DashboardSummary is the aggregate snapshot the dashboard renders.
type DashboardSummary struct {
	TotalOrders          int            `json:"total_orders"`
	OrdersByStatus       map[string]int `json:"orders_by_status"`
	ActiveProductions    int            `json:"active_productions"`
	CompletedProductions int            `json:"completed_productions"`
	OverdueStages        int            `json:"overdue_stages"`
	PendingShipments     int            `json:"pending_shipments"`
	UnpaidCount          int            `json:"unpaid_count"`
	UnpaidTotal          float64        `json:"unpaid_total"`
	OpenInspections      int            `json:"open_inspections"`
	LowStockItems        int            `json:"low_stock_items"`
	GeneratedAt          time.Time      `json:"generated_at"`
}

type DashboardService interface {
	GetSummary() (*DashboardSummary, error)
}

type dashboardService struct {
	orderRepo      repository.OrderRepository
	productionRepo repository.ProductionRepository
	stageRepo      repository.ProductionStageRepository
	shipmentRepo   repository.ShipmentRepository
	paymentRepo    repository.PaymentRepository
	inspectionRepo repository.InspectionRepository
	inventoryRepo  repository.InventoryRepository
	cacheClient    *cache.Client // nil disables caching
	cacheTTL       time.Duration
	logger         *zap.Logger
}

func NewDashboardService(
	orderRepo repository.OrderRepository,
	productionRepo repository.ProductionRepository,
	stageRepo repository.ProductionStageRepository,
	shipmentRepo repository.ShipmentRepository,
	paymentRepo repository.PaymentRepository,
	inspectionRepo repository.InspectionRepository,
	inventoryRepo repository.InventoryRepository,
	cacheClient *cache.Client,
	cacheTTL time.Duration,
	logger *zap.Logger,
) DashboardService {
	return &dashboardService{
		orderRepo:      orderRepo,
		productionRepo: productionRepo,
		stageRepo:      stageRepo,
		shipmentRepo:   shipmentRepo,
		paymentRepo:    paymentRepo,
		inspectionRepo: inspectionRepo,
		inventoryRepo:  inventoryRepo,
		cacheClient:    cacheClient,
		cacheTTL:       cacheTTL,
		logger:         logger,
	}
}

func (s *dashboardService) GetSummary() (*DashboardSummary, error) {
	if s.cacheClient != nil {
		var cached DashboardSummary
		err := s.cacheClient.GetJSON(dashboardCacheKey, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("dashboard cache read failed", zap.Error(err))
		}
	}

	summary, err := s.buildSummary()
	if err != nil {
		return nil, err
	}

	if s.cacheClient != nil {
		if err := s.cacheClient.SetJSON(dashboardCacheKey, summary, s.cacheTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}
	return summary, nil
}

func (s *dashboardService) buildSummary() (*DashboardSummary, error) {
	summary := &DashboardSummary{
		OrdersByStatus: make(map[string]int),
		GeneratedAt:    time.Now(),
	}

	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	summary.TotalOrders = len(orders)
	for _, order := range orders {
		summary.OrdersByStatus[string(order.Status)]++
	}

	productions, err := s.productionRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for _, production := range productions {
		switch production.Status {
		case models.ProductionInProgress:
			summary.ActiveProductions++
		case models.ProductionCompleted:
			summary.CompletedProductions++
		}
	}

	started, err := s.stageRepo.GetStarted()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for _, stage := range started {
		if stage.OverdueAt(now) {
			summary.OverdueStages++
		}
	}

	pending, err := s.shipmentRepo.GetByStatus(models.ShipmentPending)
	if err != nil {
		return nil, err
	}
	summary.PendingShipments = len(pending)

	unpaid, err := s.paymentRepo.GetUnpaid()
	if err != nil {
		return nil, err
	}
	summary.UnpaidCount = len(unpaid)
	for _, payment := range unpaid {
		summary.UnpaidTotal += payment.Amount
	}

	inspections, err := s.inspectionRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for _, inspection := range inspections {
		if inspection.Status == models.InspectionInProgress {
			summary.OpenInspections++
		}
	}

	lowStock, err := s.inventoryRepo.GetLowStock()
	if err != nil {
		return nil, err
	}
	summary.LowStockItems = len(lowStock)

	return summary, nil
}
