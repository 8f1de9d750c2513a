package repository

import (
	"errors"

	"github.com/mustafazaki616/IndustriTrack/internal/models"

	"gorm.io/gorm"
)

type ProductionStageRepository interface {
	GetByID(id uint) (*models.ProductionStage, error)
	// GetByOrderID returns the order's stages ordered by stage number.
	GetByOrderID(orderID uint) ([]models.ProductionStage, error)
	// GetByOrderAndNumber returns (nil, nil) when no such stage exists.
	GetByOrderAndNumber(orderID uint, stageNumber int) (*models.ProductionStage, error)
	// GetStarted returns every stage that has a start date and is not yet
	// completed, ordered by (order id, stage number). These are the only
	// candidates the overdue predicate can match.
	GetStarted() ([]models.ProductionStage, error)
	CreateBatch(stages []models.ProductionStage) error
	Update(stage *models.ProductionStage) error
	DeleteByOrderID(orderID uint) error
}

type productionStageRepository struct {
	db *gorm.DB
}

func NewProductionStageRepository(db *gorm.DB) ProductionStageRepository {
	return &productionStageRepository{db: db}
}

func (r *productionStageRepository) GetByID(id uint) (*models.ProductionStage, error) {
	var stage models.ProductionStage
	err := r.db.First(&stage, id).Error
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

func (r *productionStageRepository) GetByOrderID(orderID uint) ([]models.ProductionStage, error) {
	var stages []models.ProductionStage
	err := r.db.Where("order_id = ?", orderID).Order("stage_number").Find(&stages).Error
	return stages, err
}

func (r *productionStageRepository) GetByOrderAndNumber(orderID uint, stageNumber int) (*models.ProductionStage, error) {
	var stage models.ProductionStage
	err := r.db.Where("order_id = ? AND stage_number = ?", orderID, stageNumber).First(&stage).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

func (r *productionStageRepository) GetStarted() ([]models.ProductionStage, error) {
	var stages []models.ProductionStage
	err := r.db.
		Where("status <> ? AND start_date IS NOT NULL", models.StageCompleted).
		Order("order_id, stage_number").
		Find(&stages).Error
	return stages, err
}

func (r *productionStageRepository) CreateBatch(stages []models.ProductionStage) error {
	return r.db.Create(&stages).Error
}

func (r *productionStageRepository) Update(stage *models.ProductionStage) error {
	return r.db.Save(stage).Error
}

func (r *productionStageRepository) DeleteByOrderID(orderID uint) error {
	return r.db.Where("order_id = ?", orderID).Delete(&models.ProductionStage{}).Error
}
