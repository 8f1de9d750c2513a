package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Customer      string         `json:"customer" gorm:"size:200;not null"`
	Article       string         `json:"article" gorm:"size:200;not null"`
	Sizes         SizeMap        `json:"sizes" gorm:"type:text"`
	TotalQuantity int            `json:"total_quantity"`
	Status        OrderStatus    `json:"status" gorm:"type:varchar(30);default:'Pending'"`
	Price         *float64       `json:"price"`
	Notes         string         `json:"notes" gorm:"type:text"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

const (
	OrderPending            OrderStatus = "Pending"
	OrderInProduction       OrderStatus = "In Production"
	OrderReadyForInspection OrderStatus = "Ready for Inspection"
	OrderInspection         OrderStatus = "Inspection"
	OrderCompleted          OrderStatus = "Completed"
	OrderCancelled          OrderStatus = "Cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderInProduction, OrderReadyForInspection,
		OrderInspection, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// ParseOrderStatus rejects anything outside the closed status set.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid order status %q", s)
	}
	return status, nil
}

// SizeMap is the per-size quantity breakdown of an order, persisted as a
// JSON text column.
type SizeMap map[string]int

func (m SizeMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (m *SizeMap) Scan(value interface{}) error {
	if value == nil {
		*m = SizeMap{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported size map column type %T", value)
	}
	if len(data) == 0 {
		*m = SizeMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}
