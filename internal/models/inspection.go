package models

import "time"

type Inspection struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	OrderID        uint       `json:"order_id" gorm:"not null;index"`
	Status         string     `json:"status" gorm:"size:50;not null"`
	Inspector      string     `json:"inspector" gorm:"size:100"`
	InspectionDate *time.Time `json:"inspection_date"`
	Result         string     `json:"result" gorm:"size:50"` // OK or Rejected
	Notes          string     `json:"notes" gorm:"type:text"`
	IsPassed       bool       `json:"is_passed"`
	Defects        string     `json:"defects" gorm:"type:text"`
	DefectCount    *int       `json:"defect_count"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

const (
	InspectionInProgress = "In Progress"
	InspectionCompleted  = "Completed"

	InspectionResultOK       = "OK"
	InspectionResultRejected = "Rejected"
)
