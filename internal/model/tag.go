package model

import (
	"time"

	"gorm.io/gorm"
)

// Tag is a free-text label created on demand by business owners.
// Slug uniqueness is the lookup key; name keeps the owner's original casing.
type Tag struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"type:varchar(100);not null"`
	Slug      string         `json:"slug" gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BusinessTag joins businesses to tags
type BusinessTag struct {
	BusinessID uint `json:"business_id" gorm:"primaryKey"`
	TagID      uint `json:"tag_id" gorm:"primaryKey"`
}
