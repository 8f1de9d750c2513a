package repository

import (
	"errors"

	"github.com/mustafazaki616/IndustriTrack/internal/models"

	"gorm.io/gorm"
)

type ProductionRepository interface {
	Create(production *models.Production) error
	GetByID(id uint) (*models.Production, error)
	// GetByOrderID returns (nil, nil) when the order has no production record.
	GetByOrderID(orderID uint) (*models.Production, error)
	GetAll() ([]models.Production, error)
	Update(production *models.Production) error
	Delete(id uint) error
	DeleteByOrderID(orderID uint) error
}

type productionRepository struct {
	db *gorm.DB
}

func NewProductionRepository(db *gorm.DB) ProductionRepository {
	return &productionRepository{db: db}
}

func (r *productionRepository) Create(production *models.Production) error {
	return r.db.Create(production).Error
}

func (r *productionRepository) GetByID(id uint) (*models.Production, error) {
	var production models.Production
	err := r.db.First(&production, id).Error
	if err != nil {
		return nil, err
	}
	return &production, nil
}

func (r *productionRepository) GetByOrderID(orderID uint) (*models.Production, error) {
	var production models.Production
	err := r.db.Where("order_id = ?", orderID).First(&production).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &production, nil
}

func (r *productionRepository) GetAll() ([]models.Production, error) {
	var productions []models.Production
	err := r.db.Find(&productions).Error
	return productions, err
}

func (r *productionRepository) Update(production *models.Production) error {
	return r.db.Save(production).Error
}

func (r *productionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Production{}, id).Error
}

func (r *productionRepository) DeleteByOrderID(orderID uint) error {
	return r.db.Where("order_id = ?", orderID).Delete(&models.Production{}).Error
}
