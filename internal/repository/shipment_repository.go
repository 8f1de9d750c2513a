package repository

import (
	"errors"

	"github.com/mustafazaki616/IndustriTrack/internal/models"

	"gorm.io/gorm"
)

type ShipmentRepository interface {
	Create(shipment *models.Shipment) error
	GetByID(id uint) (*models.Shipment, error)
	// GetByOrderID returns (nil, nil) when the order has no shipment.
	GetByOrderID(orderID uint) (*models.Shipment, error)
	GetAll() ([]models.Shipment, error)
	GetByStatus(status string) ([]models.Shipment, error)
	Update(shipment *models.Shipment) error
	Delete(id uint) error
}

type shipmentRepository struct {
	db *gorm.DB
}

func NewShipmentRepository(db *gorm.DB) ShipmentRepository {
	return &shipmentRepository{db: db}
}

func (r *shipmentRepository) Create(shipment *models.Shipment) error {
	return r.db.Create(shipment).Error
}

func (r *shipmentRepository) GetByID(id uint) (*models.Shipment, error) {
	var shipment models.Shipment
	err := r.db.First(&shipment, id).Error
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

func (r *shipmentRepository) GetByOrderID(orderID uint) (*models.Shipment, error) {
	var shipment models.Shipment
	err := r.db.Where("order_id = ?", orderID).First(&shipment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

func (r *shipmentRepository) GetAll() ([]models.Shipment, error) {
	var shipments []models.Shipment
	err := r.db.Find(&shipments).Error
	return shipments, err
}

func (r *shipmentRepository) GetByStatus(status string) ([]models.Shipment, error) {
	var shipments []models.Shipment
	err := r.db.Where("status = ?", status).Find(&shipments).Error
	return shipments, err
}

func (r *shipmentRepository) Update(shipment *models.Shipment) error {
	return r.db.Save(shipment).Error
}

func (r *shipmentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Shipment{}, id).Error
}
