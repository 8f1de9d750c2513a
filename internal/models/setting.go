package models

import "time"

type Setting struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Key         string     `json:"key" gorm:"size:100;not null;uniqueIndex"`
	Value       string     `json:"value" gorm:"size:1000"`
	Category    string     `json:"category" gorm:"size:100"`
	Description string     `json:"description" gorm:"size:500"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
