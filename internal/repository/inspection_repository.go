package repository

import (
	"errors"

	"github.com/mustafazaki616/IndustriTrack/internal/models"

	"gorm.io/gorm"
)

type InspectionRepository interface {
	Create(inspection *models.Inspection) error
	GetByID(id uint) (*models.Inspection, error)
	// GetByOrderID returns (nil, nil) when the order has no inspection.
	GetByOrderID(orderID uint) (*models.Inspection, error)
	GetAll() ([]models.Inspection, error)
	Update(inspection *models.Inspection) error
	Delete(id uint) error
}

type inspectionRepository struct {
	db *gorm.DB
}

func NewInspectionRepository(db *gorm.DB) InspectionRepository {
	return &inspectionRepository{db: db}
}

func (r *inspectionRepository) Create(inspection *models.Inspection) error {
	return r.db.Create(inspection).Error
}

func (r *inspectionRepository) GetByID(id uint) (*models.Inspection, error) {
	var inspection models.Inspection
	err := r.db.First(&inspection, id).Error
	if err != nil {
		return nil, err
	}
	return &inspection, nil
}

func (r *inspectionRepository) GetByOrderID(orderID uint) (*models.Inspection, error) {
	var inspection models.Inspection
	err := r.db.Where("order_id = ?", orderID).First(&inspection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inspection, nil
}

func (r *inspectionRepository) GetAll() ([]models.Inspection, error) {
	var inspections []models.Inspection
	err := r.db.Find(&inspections).Error
	return inspections, err
}

func (r *inspectionRepository) Update(inspection *models.Inspection) error {
	return r.db.Save(inspection).Error
}

func (r *inspectionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Inspection{}, id).Error
}
