package models

import "time"

type Shipment struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	OrderID           uint       `json:"order_id" gorm:"not null;index"`
	Status            string     `json:"status" gorm:"size:50;not null"`
	TrackingNumber    string     `json:"tracking_number" gorm:"size:100"`
	ShippingAddress   string     `json:"shipping_address" gorm:"size:500"`
	Carrier           string     `json:"carrier" gorm:"size:100"`
	ShippingCost      *float64   `json:"shipping_cost"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
	ActualDelivery    *time.Time `json:"actual_delivery"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
}

const (
	ShipmentPending   = "Pending"
	ShipmentShipped   = "Shipped"
	ShipmentDelivered = "Delivered"
)
