package models

import "time"

type Customer struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Name          string     `json:"name" gorm:"size:200;not null"`
	Email         string     `json:"email" gorm:"size:200"`
	Phone         string     `json:"phone" gorm:"size:50"`
	Address       string     `json:"address" gorm:"size:500"`
	Company       string     `json:"company" gorm:"size:200"`
	ContactPerson string     `json:"contact_person" gorm:"size:200"`
	IsActive      bool       `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}
