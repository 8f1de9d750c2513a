package models

import (
	"fmt"
	"time"
)

type ProductionStage struct {
	ID               uint        `json:"id" gorm:"primaryKey"`
	OrderID          uint        `json:"order_id" gorm:"not null;index"`
	StageName        string      `json:"stage_name" gorm:"size:100;not null"`
	StageNumber      int         `json:"stage_number" gorm:"not null"` // 1-based position in the pipeline
	StartDate        *time.Time  `json:"start_date"`
	ExpectedDuration int         `json:"expected_duration" gorm:"not null"` // days
	ActualDuration   *int        `json:"actual_duration"`                   // days
	CompletionDate   *time.Time  `json:"completion_date"`
	Status           StageStatus `json:"status" gorm:"type:varchar(20);not null;default:'Pending'"`
	WorkerName       string      `json:"worker_name" gorm:"size:100"`
	Notes            string      `json:"notes" gorm:"type:text"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

type StageStatus string

const (
	StagePending    StageStatus = "Pending"
	StageInProgress StageStatus = "In Progress"
	StageCompleted  StageStatus = "Completed"
	StageOverdue    StageStatus = "Overdue"
)

func (s StageStatus) IsValid() bool {
	switch s {
	case StagePending, StageInProgress, StageCompleted, StageOverdue:
		return true
	}
	return false
}

// ParseStageStatus rejects anything outside the closed status set.
func ParseStageStatus(s string) (StageStatus, error) {
	status := StageStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid stage status %q", s)
	}
	return status, nil
}

// OverdueAt reports whether the stage deadline has passed as of now.
// A stage is overdue once it has started, is not completed, and either has
// no positive expected duration or its start date plus that duration is in
// the past. The sweep and the read paths share this predicate.
func (s *ProductionStage) OverdueAt(now time.Time) bool {
	if s.Status == StageCompleted || s.StartDate == nil {
		return false
	}
	if s.ExpectedDuration <= 0 {
		return true
	}
	deadline := dateOnly(*s.StartDate).AddDate(0, 0, s.ExpectedDuration)
	return dateOnly(now).After(deadline)
}
