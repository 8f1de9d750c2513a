package services

import (
	"errors"
	"time"

	"github.com/mustafazaki616/IndustriTrack/internal/models"
	"github.com/mustafazaki616/IndustriTrack/internal/repository"

	"gorm.io/gorm"
)

type InventoryService interface {
	CreateItem(item *models.InventoryItem) error
	GetItemByID(id uint) (*models.InventoryItem, error)
	GetAllItems() ([]models.InventoryItem, error)
	GetLowStockItems() ([]models.InventoryItem, error)
	UpdateItem(id uint, updated *models.InventoryItem) (*models.InventoryItem, error)
	DeleteItem(id uint) error

	RecordStockOut(stockOut *models.StockOut) error
	GetAllStockOuts() ([]models.StockOut, error)
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
}

func NewInventoryService(inventoryRepo repository.InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepo: inventoryRepo}
}

func (s *inventoryService) CreateItem(item *models.InventoryItem) error {
	item.IsActive = true
	return s.inventoryRepo.Create(item)
}

func (s *inventoryService) GetItemByID(id uint) (*models.InventoryItem, error) {
	return s.inventoryRepo.GetByID(id)
}

func (s *inventoryService) GetAllItems() ([]models.InventoryItem, error) {
	return s.inventoryRepo.GetAll()
}

func (s *inventoryService) GetLowStockItems() ([]models.InventoryItem, error) {
	return s.inventoryRepo.GetLowStock()
}

func (s *inventoryService) UpdateItem(id uint, updated *models.InventoryItem) (*models.InventoryItem, error) {
	existing, err := s.inventoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	existing.ItemName = updated.ItemName
	existing.Category = updated.Category
	existing.Location = updated.Location
	existing.Quantity = updated.Quantity
	existing.Unit = updated.Unit
	existing.MinStock = updated.MinStock
	existing.MaxStock = updated.MaxStock
	existing.Supplier = updated.Supplier
	existing.Cost = updated.Cost
	existing.IsActive = updated.IsActive
	existing.Notes = updated.Notes
	existing.UpdatedAt = &now

	if err := s.inventoryRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *inventoryService) DeleteItem(id uint) error {
	if _, err := s.inventoryRepo.GetByID(id); err != nil {
		return err
	}
	return s.inventoryRepo.Delete(id)
}

// RecordStockOut books stock leaving the warehouse and decrements the
// matching ledger item when one exists under the same product name.
func (s *inventoryService) RecordStockOut(stockOut *models.StockOut) error {
	if stockOut.Date.IsZero() {
		stockOut.Date = time.Now()
	}
	if stockOut.Total == 0 {
		stockOut.Total = float64(stockOut.Quantity) * stockOut.Price
	}
	if err := s.inventoryRepo.CreateStockOut(stockOut); err != nil {
		return err
	}

	item, err := s.inventoryRepo.GetByName(stockOut.Product)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	item.Quantity -= stockOut.Quantity
	if item.Quantity < 0 {
		item.Quantity = 0
	}
	return s.inventoryRepo.Update(item)
}

func (s *inventoryService) GetAllStockOuts() ([]models.StockOut, error) {
	return s.inventoryRepo.GetAllStockOuts()
}
