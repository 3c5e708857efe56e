package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account and its profile record
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Email     string         `json:"email" gorm:"type:varchar(100);uniqueIndex"`
	Password  string         `json:"-" gorm:"type:varchar(255)"`
	FullName  string         `json:"full_name" gorm:"type:varchar(100)"`
	Provider  string         `json:"provider,omitempty" gorm:"type:varchar(20)"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
