package model

import "time"

// Image is one gallery entry under a business. DisplayOrder preserves the
// owner's original selection order.
type Image struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	BusinessID   uint      `json:"business_id" gorm:"index;not null"`
	URL          string    `json:"url" gorm:"type:varchar(500);not null"`
	DisplayOrder int       `json:"display_order" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}
