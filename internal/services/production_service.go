package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/mustafazaki616/IndustriTrack/internal/models"
	"github.com/mustafazaki616/IndustriTrack/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StageOverride is a caller-supplied replacement for one catalog entry when
// starting production. Overrides are honored only when exactly one per
// catalog stage is given; otherwise the defaults apply in full.
type StageOverride struct {
	Name         string `json:"name"`
	ExpectedDays int    `json:"expected_days"`
}

type StartProductionResult struct {
	Production *models.Production       `json:"production"`
	Stages     []models.ProductionStage `json:"stages"`
}

type UpdateStageInput struct {
	StageID               uint
	Status                string
	WorkerName            string
	Notes                 string
	CompletionDate        *time.Time
	ActualDuration        *int
	ExpectedDurationDelta *int
}

// ProductionView is the joined row the production list endpoint returns:
// the record, its ordered stages, and the owning order's customer.
type ProductionView struct {
	models.Production
	Stages   []models.ProductionStage `json:"stages"`
	Customer string                   `json:"customer,omitempty"`
}

type ProductionService interface {
	StartProduction(orderID uint, overrides []StageOverride) (*StartProductionResult, error)
	UpdateStage(input UpdateStageInput) (*models.ProductionStage, error)
	GetStagesForOrder(orderID uint) ([]models.ProductionStage, error)
	GetOverdueStages() ([]models.ProductionStage, error)
	SweepOverdue() (int, error)
	FixMissingStages() (int, error)

	ListProductions() ([]ProductionView, error)
	GetProduction(id uint) (*models.Production, error)
	CreateProduction(production *models.Production) error
	UpdateProduction(id uint, updated *models.Production) (*models.Production, error)
	DeleteProduction(id uint) error

	OrderStatusListener
}

type productionService struct {
	productionRepo repository.ProductionRepository
	stageRepo      repository.ProductionStageRepository
	orderRepo      repository.OrderRepository
	inspectionRepo repository.InspectionRepository
	shipmentRepo   repository.ShipmentRepository
	logger         *zap.Logger
}

func NewProductionService(
	productionRepo repository.ProductionRepository,
	stageRepo repository.ProductionStageRepository,
	orderRepo repository.OrderRepository,
	inspectionRepo repository.InspectionRepository,
	shipmentRepo repository.ShipmentRepository,
	logger *zap.Logger,
) ProductionService {
	return &productionService{
		productionRepo: productionRepo,
		stageRepo:      stageRepo,
		orderRepo:      orderRepo,
		inspectionRepo: inspectionRepo,
		shipmentRepo:   shipmentRepo,
		logger:         logger,
	}
}

// StartProduction creates the production record for an order (flipping the
// order to In Production) and ensures its full stage set exists. Calling it
// again on an order that already has all stages is a no-op beyond the read.
func (s *productionService) StartProduction(orderID uint, overrides []StageOverride) (*StartProductionResult, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	production, err := s.productionRepo.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if production == nil {
		now := time.Now()
		production = &models.Production{
			OrderID:   orderID,
			Status:    models.ProductionInProgress,
			Stage:     models.FirstStageName(),
			StartDate: &now,
		}
		if err := s.productionRepo.Create(production); err != nil {
			return nil, err
		}
		order.Status = models.OrderInProduction
		if err := s.orderRepo.Update(order); err != nil {
			return nil, err
		}
		s.logger.Info("production started", zap.Uint("order_id", orderID))
	}

	if _, err := s.ensureStages(orderID, overrides); err != nil {
		return nil, err
	}

	stages, err := s.stageRepo.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	return &StartProductionResult{Production: production, Stages: stages}, nil
}

// UpdateStage drives the stage state machine. Two branches:
//   - extend: target In Progress with neither an actual duration nor a
//     completion date adds the expected-duration delta to the deadline and
//     leaves the stage running. This is how an overdue stage is resolved
//     without marking it done.
//   - normal: the target status is applied; completing a stage stamps its
//     completion date and actual duration, then auto-starts the next
//     pending stage or, on the last stage, closes out the whole production.
func (s *productionService) UpdateStage(input UpdateStageInput) (*models.ProductionStage, error) {
	stage, err := s.stageRepo.GetByID(input.StageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStageNotFound
	}
	if err != nil {
		return nil, err
	}

	status, err := models.ParseStageStatus(input.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, input.Status)
	}

	if status == models.StageInProgress && input.ActualDuration == nil && input.CompletionDate == nil {
		if input.ExpectedDurationDelta != nil && *input.ExpectedDurationDelta > 0 {
			stage.ExpectedDuration += *input.ExpectedDurationDelta
		}
		stage.Status = models.StageInProgress
		if err := s.stageRepo.Update(stage); err != nil {
			return nil, err
		}
		return stage, nil
	}

	stage.Status = status
	if input.WorkerName != "" {
		stage.WorkerName = input.WorkerName
	}
	if input.Notes != "" {
		stage.Notes = input.Notes
	}
	if input.CompletionDate != nil {
		stage.CompletionDate = input.CompletionDate
	}
	if input.ActualDuration != nil {
		stage.ActualDuration = input.ActualDuration
	}

	if status == models.StageCompleted {
		now := time.Now()
		if stage.CompletionDate == nil {
			stage.CompletionDate = &now
		}
		if stage.ActualDuration == nil && stage.StartDate != nil {
			days := models.DaysBetween(*stage.StartDate, *stage.CompletionDate)
			stage.ActualDuration = &days
		}

		next, err := s.stageRepo.GetByOrderAndNumber(stage.OrderID, stage.StageNumber+1)
		if err != nil {
			return nil, err
		}
		if next != nil {
			if next.Status == models.StagePending {
				next.Status = models.StageInProgress
				next.StartDate = &now
				if err := s.stageRepo.Update(next); err != nil {
					return nil, err
				}
			}
		} else if err := s.closeOutProduction(stage, now); err != nil {
			return nil, err
		}
	}

	if err := s.stageRepo.Update(stage); err != nil {
		return nil, err
	}
	return stage, nil
}

// closeOutProduction runs when the last stage of an order completes: the
// production record is completed and the order moves to Ready for
// Inspection.
func (s *productionService) closeOutProduction(lastStage *models.ProductionStage, now time.Time) error {
	production, err := s.productionRepo.GetByOrderID(lastStage.OrderID)
	if err != nil {
		return err
	}
	if production != nil {
		production.Status = models.ProductionCompleted
		production.Stage = lastStage.StageName
		production.CompletionDate = &now
		if production.StartDate != nil {
			days := models.DaysBetween(*production.StartDate, now)
			production.ActualDuration = &days
		}
		if err := s.productionRepo.Update(production); err != nil {
			return err
		}
	}

	order, err := s.orderRepo.GetByID(lastStage.OrderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	order.Status = models.OrderReadyForInspection
	if err := s.orderRepo.Update(order); err != nil {
		return err
	}
	s.logger.Info("production completed",
		zap.Uint("order_id", lastStage.OrderID),
		zap.String("final_stage", lastStage.StageName))
	return nil
}

func (s *productionService) GetStagesForOrder(orderID uint) ([]models.ProductionStage, error) {
	return s.stageRepo.GetByOrderID(orderID)
}

// GetOverdueStages is the read path: it evaluates the overdue predicate
// without persisting anything.
func (s *productionService) GetOverdueStages() ([]models.ProductionStage, error) {
	candidates, err := s.stageRepo.GetStarted()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	overdue := make([]models.ProductionStage, 0, len(candidates))
	for _, stage := range candidates {
		if stage.OverdueAt(now) {
			overdue = append(overdue, stage)
		}
	}
	return overdue, nil
}

// SweepOverdue persists the Overdue status on every started, uncompleted
// stage whose deadline has passed. Running it twice has no further effect.
func (s *productionService) SweepOverdue() (int, error) {
	candidates, err := s.stageRepo.GetStarted()
	if err != nil {
		return 0, err
	}
	now := time.Now()
	flagged := 0
	for i := range candidates {
		stage := &candidates[i]
		if stage.Status == models.StageOverdue || !stage.OverdueAt(now) {
			continue
		}
		stage.Status = models.StageOverdue
		if err := s.stageRepo.Update(stage); err != nil {
			return flagged, err
		}
		flagged++
	}
	if flagged > 0 {
		s.logger.Info("overdue sweep flagged stages", zap.Int("count", flagged))
	}
	return flagged, nil
}

// FixMissingStages recreates the default stage set for every In Production
// order whose stages are missing or incomplete. Recovery action for orders
// left half-initialized by an interrupted start.
func (s *productionService) FixMissingStages() (int, error) {
	orders, err := s.orderRepo.GetByStatus(models.OrderInProduction)
	if err != nil {
		return 0, err
	}
	repaired := 0
	for _, order := range orders {
		created, err := s.ensureStages(order.ID, nil)
		if err != nil {
			return repaired, err
		}
		if created {
			s.logger.Warn("recreated missing production stages", zap.Uint("order_id", order.ID))
			repaired++
		}
	}
	return repaired, nil
}

// OnOrderStatusChanged keeps stage creation in sync with the order module:
// whenever an order lands on In Production, its stage set must exist.
func (s *productionService) OnOrderStatusChanged(orderID uint, _, newStatus models.OrderStatus) error {
	if newStatus != models.OrderInProduction {
		return nil
	}
	_, err := s.ensureStages(orderID, nil)
	return err
}

// ensureStages guarantees a full stage set for the order. Anything short of
// the full count is treated as corrupt and recreated wholesale; a complete
// set is left untouched. Reports whether stages were (re)created.
func (s *productionService) ensureStages(orderID uint, overrides []StageOverride) (bool, error) {
	existing, err := s.stageRepo.GetByOrderID(orderID)
	if err != nil {
		return false, err
	}
	if len(existing) >= models.StageCount {
		return false, nil
	}
	if len(existing) > 0 {
		if err := s.stageRepo.DeleteByOrderID(orderID); err != nil {
			return false, err
		}
	}
	if err := s.stageRepo.CreateBatch(buildStageSet(orderID, overrides)); err != nil {
		return false, err
	}
	return true, nil
}

// buildStageSet materializes the catalog (or a full set of overrides) into
// trackers for one order, with stage 1 already running.
func buildStageSet(orderID uint, overrides []StageOverride) []models.ProductionStage {
	now := time.Now()
	defs := models.StageCatalog[:]
	if len(overrides) == models.StageCount {
		defs = make([]models.StageDefinition, 0, models.StageCount)
		for _, o := range overrides {
			defs = append(defs, models.StageDefinition{Name: o.Name, DefaultDays: o.ExpectedDays})
		}
	}

	stages := make([]models.ProductionStage, 0, models.StageCount)
	for i, def := range defs {
		stage := models.ProductionStage{
			OrderID:          orderID,
			StageName:        def.Name,
			StageNumber:      i + 1,
			ExpectedDuration: def.DefaultDays,
			Status:           models.StagePending,
		}
		if i == 0 {
			stage.Status = models.StageInProgress
			stage.StartDate = &now
		}
		stages = append(stages, stage)
	}
	return stages
}

func (s *productionService) ListProductions() ([]ProductionView, error) {
	productions, err := s.productionRepo.GetAll()
	if err != nil {
		return nil, err
	}
	views := make([]ProductionView, 0, len(productions))
	for _, production := range productions {
		stages, err := s.stageRepo.GetByOrderID(production.OrderID)
		if err != nil {
			return nil, err
		}
		view := ProductionView{Production: production, Stages: stages}
		order, err := s.orderRepo.GetByID(production.OrderID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if order != nil {
			view.Customer = order.Customer
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *productionService) GetProduction(id uint) (*models.Production, error) {
	production, err := s.productionRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductionNotFound
	}
	return production, err
}

func (s *productionService) CreateProduction(production *models.Production) error {
	if !production.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, production.Status)
	}
	return s.productionRepo.Create(production)
}

// UpdateProduction overwrites the record's fields. Completing a record here
// also moves the order into inspection and opens the pending shipment, the
// same lifecycle hand-off the dashboard relies on.
func (s *productionService) UpdateProduction(id uint, updated *models.Production) (*models.Production, error) {
	existing, err := s.productionRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductionNotFound
	}
	if err != nil {
		return nil, err
	}
	if !updated.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, updated.Status)
	}

	existing.OrderID = updated.OrderID
	existing.Status = updated.Status
	existing.Stage = updated.Stage
	existing.StartDate = updated.StartDate
	existing.CompletionDate = updated.CompletionDate
	existing.ExpectedDuration = updated.ExpectedDuration
	existing.ActualDuration = updated.ActualDuration
	existing.Notes = updated.Notes
	existing.AssignedWorker = updated.AssignedWorker

	if updated.Status == models.ProductionCompleted {
		if err := s.handOffToInspection(existing.OrderID); err != nil {
			return nil, err
		}
	}

	if err := s.productionRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *productionService) handOffToInspection(orderID uint) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if order != nil && order.Status != models.OrderInspection {
		inspection, err := s.inspectionRepo.GetByOrderID(orderID)
		if err != nil {
			return err
		}
		if inspection == nil {
			if err := s.inspectionRepo.Create(&models.Inspection{
				OrderID: orderID,
				Status:  models.InspectionInProgress,
			}); err != nil {
				return err
			}
		}
		order.Status = models.OrderInspection
		if err := s.orderRepo.Update(order); err != nil {
			return err
		}
	}

	shipment, err := s.shipmentRepo.GetByOrderID(orderID)
	if err != nil {
		return err
	}
	if shipment == nil {
		if err := s.shipmentRepo.Create(&models.Shipment{
			OrderID: orderID,
			Status:  models.ShipmentPending,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *productionService) DeleteProduction(id uint) error {
	if _, err := s.productionRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductionNotFound
		}
		return err
	}
	return s.productionRepo.Delete(id)
}
