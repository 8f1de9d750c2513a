package repository

import (
	"github.com/mustafazaki616/IndustriTrack/internal/models"

	"gorm.io/gorm"
)

// InventoryRepository covers both the stock ledger and stock-out records.
type InventoryRepository interface {
	Create(item *models.InventoryItem) error
	GetByID(id uint) (*models.InventoryItem, error)
	GetAll() ([]models.InventoryItem, error)
	GetByName(name string) (*models.InventoryItem, error)
	GetLowStock() ([]models.InventoryItem, error)
	Update(item *models.InventoryItem) error
	Delete(id uint) error

	CreateStockOut(stockOut *models.StockOut) error
	GetAllStockOuts() ([]models.StockOut, error)
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(item *models.InventoryItem) error {
	return r.db.Create(item).Error
}

func (r *inventoryRepository) GetByID(id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) GetAll() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.Find(&items).Error
	return items, err
}

func (r *inventoryRepository) GetByName(name string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.Where("item_name = ?", name).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) GetLowStock() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.Where("min_stock IS NOT NULL AND quantity <= min_stock").Find(&items).Error
	return items, err
}

func (r *inventoryRepository) Update(item *models.InventoryItem) error {
	return r.db.Save(item).Error
}

func (r *inventoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.InventoryItem{}, id).Error
}

func (r *inventoryRepository) CreateStockOut(stockOut *models.StockOut) error {
	return r.db.Create(stockOut).Error
}

func (r *inventoryRepository) GetAllStockOuts() ([]models.StockOut, error) {
	var stockOuts []models.StockOut
	err := r.db.Find(&stockOuts).Error
	return stockOuts, err
}
