package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mustafazaki616/IndustriTrack/internal/models"
	"github.com/mustafazaki616/IndustriTrack/internal/repository"
)

type productionFixture struct {
	db             *gorm.DB
	orderRepo      repository.OrderRepository
	productionRepo repository.ProductionRepository
	stageRepo      repository.ProductionStageRepository
	inspectionRepo repository.InspectionRepository
	shipmentRepo   repository.ShipmentRepository
	service        ProductionService
}

func newProductionFixture(t *testing.T) *productionFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Order{},
		&models.Production{},
		&models.ProductionStage{},
		&models.Inspection{},
		&models.Shipment{},
	))

	f := &productionFixture{
		db:             db,
		orderRepo:      repository.NewOrderRepository(db),
		productionRepo: repository.NewProductionRepository(db),
		stageRepo:      repository.NewProductionStageRepository(db),
		inspectionRepo: repository.NewInspectionRepository(db),
		shipmentRepo:   repository.NewShipmentRepository(db),
	}
	f.service = NewProductionService(
		f.productionRepo, f.stageRepo, f.orderRepo,
		f.inspectionRepo, f.shipmentRepo, zap.NewNop(),
	)
	return f
}

func (f *productionFixture) createOrder(t *testing.T, status models.OrderStatus) *models.Order {
	t.Helper()
	order := &models.Order{
		Customer:      "Acme Corp",
		Article:       "Leather Jacket",
		Sizes:         models.SizeMap{"M": 30, "L": 20},
		TotalQuantity: 50,
		Status:        status,
	}
	require.NoError(t, f.orderRepo.Create(order))
	return order
}

func TestStartProductionCreatesFullStageSet(t *testing.T) {
	f := newProductionFixture(t)
	order := f.createOrder(t, models.OrderPending)

	result, err := f.service.StartProduction(order.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, result.Production)
	require.Len(t, result.Stages, models.StageCount)

	for i, stage := range result.Stages {
		assert.Equal(t, i+1, stage.StageNumber)
		assert.Equal(t, models.StageCatalog[i].Name, stage.StageName)
		assert.Equal(t, models.StageCatalog[i].DefaultDays, stage.ExpectedDuration)
		if i == 0 {
			assert.Equal(t, models.StageInProgress, stage.Status)
			assert.NotNil(t, stage.StartDate)
		} else {
			assert.Equal(t, models.StagePending, stage.Status)
			assert.Nil(t, stage.StartDate)
		}
	}

	assert.Equal(t, models.ProductionInProgress, result.Production.Status)
	assert.Equal(t, models.FirstStageName(), result.Production.Stage)

	updated, err := f.orderRepo.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderInProduction, updated.Status)
}

func TestStartProductionIsIdempotent(t *testing.T) {
	f := newProductionFixture(t)
	order := f.createOrder(t, models.OrderPending)

	first, err := f.service.StartProduction(order.ID, nil)
	require.NoError(t, err)
	second, err := f.service.StartProduction(order.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, first.Production.ID, second.Production.ID)

	var productionCount int64
	require.NoError(t, f.db.Model(&models.Production{}).Where("order_id = ?", order.ID).Count(&productionCount).Error)
	assert.EqualValues(t, 1, productionCount)

	stages, err := f.stageRepo.GetByOrderID(order.ID)
	require.NoError(t, err)
	assert.Len(t, stages, models.StageCount)

	// The second call must not reset the running first stage.
	assert.Equal(t, first.Stages[0].ID, stages[0].ID)
}

func TestStartProductionWithCustomDurations(t *testing.T) {
	f := newProductionFixture(t)
	order := f.createOrder(t, models.OrderPending)

	overrides := make([]StageOverride, 0, models.StageCount)
	for i, def := range models.StageCatalog {
		overrides = append(overrides, StageOverride{Name: def.Name, ExpectedDays: i + 2})
	}

	result, err := f.service.StartProduction(order.ID, overrides)
	require.NoError(t, err)
	require.Len(t, result.Stages, models.StageCount)
	for i, stage := range result.Stages {
		assert.Equal(t, i+2, stage.ExpectedDuration)
	}
}

func TestStartProductionUnknownOrder(t *testing.T) {
	f := newProductionFixture(t)

	_, err := f.service.StartProduction(999, nil)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateStageCompletionAdvancesNext(t *testing.T) {
	f := newProductionFixture(t)
	order := f.createOrder(t, models.OrderPending)
	result, err := f.service.StartProduction(order.ID, nil)
	require.NoError(t, err)

	done, err := f.service.UpdateStage(UpdateStageInput{
		StageID:    result.Stages[0].ID,
		Status:     "Completed",
		WorkerName: "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StageCompleted, done.Status)
	require.NotNil(t, done.CompletionDate)
	require.NotNil(t, done.ActualDuration)
	assert.Equal(t, "Alice", done.WorkerName)

	stages, err := f.stageRepo.GetByOrderID(order.ID)
	require.NoError(t, err)

	inProgress := 0
	for _, stage := range stages {
		if stage.Status == models.StageInProgress {
			inProgress++
			assert.Equal(t, 2, stage.StageNumber)
			assert.NotNil(t, stage.StartDate)
		}
	}
	assert.Equal(t, 1, inProgress)
}

func TestUpdateStageExtendDoesNotComplete(t *testing.T) {
	f := newProductionFixture(t)
	order := f.createOrder(t, models.OrderPending)
	result, err := f.service.StartProduction(order.ID, nil)
	require.NoError(t, err)

	first := result.Stages[0]
	delta := 3
	extended, err := f.service.UpdateStage(UpdateStageInput{
		StageID:               first.ID,
		Status:                "In Progress",
		ExpectedDurationDelta: &delta,
	})
	require.NoError(t, err)

	assert.Equal(t, models.StageInProgress, extended.Status)
	assert.Equal(t, first.ExpectedDuration+3, extended.ExpectedDuration)
	assert.Nil(t, extended.CompletionDate)
	assert.Nil(t, extended.ActualDuration)

	// A zero or negative delta changes nothing but keeps the stage running.
	negative := -2
	unchanged, err := f.service.UpdateStage(UpdateStageInput{
		StageID:               first.ID,
		Status:                "In Progress",
		ExpectedDurationDelta: &negative,
	})
	require.NoError(t, err)
	assert.Equal(t, extended.ExpectedDuration, unchanged.ExpectedDuration)
}

func TestUpdateStageRejectsUnknownStatus(t *testing.T) {
	f := newProductionFixture(t)
	order := f.createOrder(t, models.OrderPending)
	result, err := f.service.StartProduction(order.ID, nil)
	require.NoError(t, err)

	_, err = f.service.UpdateStage(UpdateStageInput{
		StageID: result.Stages[0].ID,
		Status:  "Done",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStageUnknownStage(t *testing.T) {
	f := newProductionFixture(t)

	_, err := f.service.UpdateStage(UpdateStageInput{StageID: 42, Status: "Completed"})
	assert.ErrorIs(t, err, ErrStageNotFound)
}

func TestFinalStageCompletionClosesProduction(t *testing.T) {
	f := newProductionFixture(t)
	order := f.createOrder(t, models.OrderPending)
	_, err := f.service.StartProduction(order.ID, nil)
	require.NoError(t, err)

	for n := 1; n <= models.StageCount; n++ {
		stages, err := f.stageRepo.GetByOrderID(order.ID)
		require.NoError(t, err)
		_, err = f.service.UpdateStage(UpdateStageInput{
			StageID: stages[n-1].ID,
			Status:  "Completed",
		})
		require.NoError(t, err)
	}

	stages, err := f.stageRepo.GetByOrderID(order.ID)
	require.NoError(t, err)
	for _, stage := range stages {
		assert.Equal(t, models.StageCompleted, stage.Status)
		assert.NotNil(t, stage.CompletionDate)
	}

	production, err := f.productionRepo.GetByOrderID(order.ID)
	require.NoError(t, err)
	require.NotNil(t, production)
	assert.Equal(t, models.ProductionCompleted, production.Status)
	assert.Equal(t, models.StageCatalog[models.StageCount-1].Name, production.Stage)
	assert.NotNil(t, production.CompletionDate)
	assert.NotNil(t, production.ActualDuration)

	updated, err := f.orderRepo.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderReadyForInspection, updated.Status)
}

func TestSweepOverdue(t *testing.T) {
	f := newProductionFixture(t)
	order := f.createOrder(t, models.OrderPending)
	result, err := f.service.StartProduction(order.ID, nil)
	require.NoError(t, err)

	// Push the running stage past its one-day deadline.
	first, err := f.stageRepo.GetByID(result.Stages[0].ID)
	require.NoError(t, err)
	past := time.Now().AddDate(0, 0, -5)
	first.StartDate = &past
	require.NoError(t, f.stageRepo.Update(first))

	// A completed stage with an old start date must never be flagged.
	second, err := f.stageRepo.GetByID(result.Stages[1].ID)
	require.NoError(t, err)
	second.Status = models.StageCompleted
	second.StartDate = &past
	require.NoError(t, f.stageRepo.Update(second))

	flagged, err := f.service.SweepOverdue()
	require.NoError(t, err)
	assert.Equal(t, 1, flagged)

	swept, err := f.stageRepo.GetByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageOverdue, swept.Status)

	untouched, err := f.stageRepo.GetByID(second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageCompleted, untouched.Status)

	// Second sweep finds nothing new.
	flagged, err = f.service.SweepOverdue()
	require.NoError(t, err)
	assert.Equal(t, 0, flagged)
}

func TestGetOverdueStagesDoesNotPersist(t *testing.T) {
	f := newProductionFixture(t)
	order := f.createOrder(t, models.OrderPending)
	result, err := f.service.StartProduction(order.ID, nil)
	require.NoError(t, err)

	first, err := f.stageRepo.GetByID(result.Stages[0].ID)
	require.NoError(t, err)
	past := time.Now().AddDate(0, 0, -5)
	first.StartDate = &past
	require.NoError(t, f.stageRepo.Update(first))

	overdue, err := f.service.GetOverdueStages()
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, first.ID, overdue[0].ID)

	// Read path leaves the stored status alone.
	stored, err := f.stageRepo.GetByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageInProgress, stored.Status)
}

func TestFixMissingStages(t *testing.T) {
	f := newProductionFixture(t)

	healthy := f.createOrder(t, models.OrderPending)
	_, err := f.service.StartProduction(healthy.ID, nil)
	require.NoError(t, err)

	// An In Production order whose stages were lost entirely.
	broken := f.createOrder(t, models.OrderInProduction)

	// An In Production order with a truncated stage set.
	partial := f.createOrder(t, models.OrderInProduction)
	_, err = f.service.StartProduction(partial.ID, nil)
	require.NoError(t, err)
	require.NoError(t, f.db.Where("order_id = ? AND stage_number > ?", partial.ID, 3).
		Delete(&models.ProductionStage{}).Error)

	repaired, err := f.service.FixMissingStages()
	require.NoError(t, err)
	assert.Equal(t, 2, repaired)

	for _, orderID := range []uint{healthy.ID, broken.ID, partial.ID} {
		stages, err := f.stageRepo.GetByOrderID(orderID)
		require.NoError(t, err)
		assert.Len(t, stages, models.StageCount)
	}

	// Running it again repairs nothing further.
	repaired, err = f.service.FixMissingStages()
	require.NoError(t, err)
	assert.Equal(t, 0, repaired)
}

func TestUpdateProductionCompletionHandsOffToInspection(t *testing.T) {
	f := newProductionFixture(t)
	order := f.createOrder(t, models.OrderInProduction)

	production := &models.Production{
		OrderID: order.ID,
		Status:  models.ProductionInProgress,
		Stage:   models.FirstStageName(),
	}
	require.NoError(t, f.service.CreateProduction(production))

	production.Status = models.ProductionCompleted
	_, err := f.service.UpdateProduction(production.ID, production)
	require.NoError(t, err)

	updated, err := f.orderRepo.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderInspection, updated.Status)

	inspection, err := f.inspectionRepo.GetByOrderID(order.ID)
	require.NoError(t, err)
	require.NotNil(t, inspection)
	assert.Equal(t, models.InspectionInProgress, inspection.Status)

	shipment, err := f.shipmentRepo.GetByOrderID(order.ID)
	require.NoError(t, err)
	require.NotNil(t, shipment)
	assert.Equal(t, models.ShipmentPending, shipment.Status)

	// A second completion does not duplicate the inspection or shipment.
	_, err = f.service.UpdateProduction(production.ID, production)
	require.NoError(t, err)

	var inspectionCount, shipmentCount int64
	require.NoError(t, f.db.Model(&models.Inspection{}).Where("order_id = ?", order.ID).Count(&inspectionCount).Error)
	require.NoError(t, f.db.Model(&models.Shipment{}).Where("order_id = ?", order.ID).Count(&shipmentCount).Error)
	assert.EqualValues(t, 1, inspectionCount)
	assert.EqualValues(t, 1, shipmentCount)
}
