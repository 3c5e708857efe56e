package model

import "time"

// Service is one offering listed under a business. Price is free text the
// way owners enter it ("Rs 500", "negotiable").
type Service struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	BusinessID uint      `json:"business_id" gorm:"index;not null"`
	Name       string    `json:"name" gorm:"type:varchar(255);not null"`
	Price      string    `json:"price" gorm:"type:varchar(100)"`
	CreatedAt  time.Time `json:"created_at"`
}
