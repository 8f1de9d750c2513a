package models

import "time"

type InventoryItem struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	ItemName  string     `json:"item_name" gorm:"size:200;not null"`
	Category  string     `json:"category" gorm:"size:100"`
	Location  string     `json:"location" gorm:"size:100"`
	Quantity  int        `json:"quantity"`
	Unit      string     `json:"unit" gorm:"size:50"`
	MinStock  *int       `json:"min_stock"`
	MaxStock  *int       `json:"max_stock"`
	Supplier  string     `json:"supplier" gorm:"size:200"`
	Cost      *float64   `json:"cost"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	Notes     string     `json:"notes" gorm:"type:text"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// StockOut records stock leaving the warehouse, usually to a buyer.
type StockOut struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Product   string    `json:"product" gorm:"size:200;not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Buyer     string    `json:"buyer" gorm:"size:200"`
	Date      time.Time `json:"date"`
	Reason    string    `json:"reason" gorm:"size:200"`
	Price     float64   `json:"price"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}
