package models

import "time"

type Report struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"size:200;not null"`
	Type        string     `json:"type" gorm:"size:100;not null"`
	Data        string     `json:"data" gorm:"type:text"` // JSON payload
	DownloadURL string     `json:"download_url" gorm:"size:500"`
	Description string     `json:"description" gorm:"type:text"`
	IsGenerated bool       `json:"is_generated"`
	GeneratedBy string     `json:"generated_by" gorm:"size:100"`
	GeneratedAt *time.Time `json:"generated_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
