package models

import (
	"fmt"
	"time"
)

type Production struct {
	ID               uint             `json:"id" gorm:"primaryKey"`
	OrderID          uint             `json:"order_id" gorm:"not null;index"`
	Status           ProductionStatus `json:"status" gorm:"type:varchar(20);not null"`
	Stage            string           `json:"stage" gorm:"size:100;not null"` // label of the stage the order is currently in
	StartDate        *time.Time       `json:"start_date"`
	CompletionDate   *time.Time       `json:"completion_date"`
	ExpectedDuration *int             `json:"expected_duration"` // days
	ActualDuration   *int             `json:"actual_duration"`   // days
	Notes            string           `json:"notes" gorm:"type:text"`
	AssignedWorker   string           `json:"assigned_worker" gorm:"size:100"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type ProductionStatus string

const (
	ProductionInProgress ProductionStatus = "In Progress"
	ProductionCompleted  ProductionStatus = "Completed"
)

func (s ProductionStatus) IsValid() bool {
	return s == ProductionInProgress || s == ProductionCompleted
}

// ParseProductionStatus rejects anything outside the closed status set.
func ParseProductionStatus(s string) (ProductionStatus, error) {
	status := ProductionStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid production status %q", s)
	}
	return status, nil
}

// DaysBetween returns the whole days elapsed between the calendar dates of
// from and to, ignoring the time of day.
func DaysBetween(from, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
