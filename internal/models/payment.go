package models

import "time"

type Payment struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	OrderID       uint       `json:"order_id" gorm:"not null;index"`
	Status        string     `json:"status" gorm:"size:50;not null"`
	Method        string     `json:"method" gorm:"size:50"`
	Amount        float64    `json:"amount"`
	PaymentDate   *time.Time `json:"payment_date"`
	Customer      string     `json:"customer" gorm:"size:200"`
	TransactionID string     `json:"transaction_id" gorm:"size:100"`
	Notes         string     `json:"notes" gorm:"type:text"`
	IsPaid        bool       `json:"is_paid"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

const (
	PaymentPending = "Pending"
	PaymentPartial = "Partial"
	PaymentPaid    = "Paid"
)
