package services

import (
	"fmt"
	"time"

	"github.com/mustafazaki616/IndustriTrack/internal/models"
	"github.com/mustafazaki616/IndustriTrack/internal/repository"

	"github.com/google/uuid"
)

type ShipmentService interface {
	CreateShipment(shipment *models.Shipment) error
	GetShipmentByID(id uint) (*models.Shipment, error)
	GetAllShipments() ([]models.Shipment, error)
	UpdateShipment(id uint, updated *models.Shipment) (*models.Shipment, error)
	DeleteShipment(id uint) error
}

type shipmentService struct {
	shipmentRepo repository.ShipmentRepository
}

func NewShipmentService(shipmentRepo repository.ShipmentRepository) ShipmentService {
	return &shipmentService{shipmentRepo: shipmentRepo}
}

func (s *shipmentService) CreateShipment(shipment *models.Shipment) error {
	if shipment.Status == "" {
		shipment.Status = models.ShipmentPending
	}
	return s.shipmentRepo.Create(shipment)
}

func (s *shipmentService) GetShipmentByID(id uint) (*models.Shipment, error) {
	return s.shipmentRepo.GetByID(id)
}

func (s *shipmentService) GetAllShipments() ([]models.Shipment, error) {
	return s.shipmentRepo.GetAll()
}

func (s *shipmentService) UpdateShipment(id uint, updated *models.Shipment) (*models.Shipment, error) {
	existing, err := s.shipmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	existing.OrderID = updated.OrderID
	existing.Status = updated.Status
	existing.TrackingNumber = updated.TrackingNumber
	existing.ShippingAddress = updated.ShippingAddress
	existing.Carrier = updated.Carrier
	existing.ShippingCost = updated.ShippingCost
	existing.EstimatedDelivery = updated.EstimatedDelivery
	existing.ActualDelivery = updated.ActualDelivery
	existing.UpdatedAt = &now

	// Auto-created shipments leave the warehouse without a tracking number;
	// assign one the first time the shipment goes out.
	if existing.Status == models.ShipmentShipped && existing.TrackingNumber == "" {
		existing.TrackingNumber = newTrackingNumber()
	}
	if existing.Status == models.ShipmentDelivered && existing.ActualDelivery == nil {
		existing.ActualDelivery = &now
	}

	if err := s.shipmentRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *shipmentService) DeleteShipment(id uint) error {
	if _, err := s.shipmentRepo.GetByID(id); err != nil {
		return err
	}
	return s.shipmentRepo.Delete(id)
}

func newTrackingNumber() string {
	return fmt.Sprintf("TRK-%s", uuid.NewString())
}
