package model

import (
	"time"

	"gorm.io/gorm"
)

// Business represents a business listing in the directory
type Business struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Slug        string    `json:"slug" gorm:"type:varchar(255);uniqueIndex;not null"`
	CategoryID  *uint     `json:"category_id,omitempty" gorm:"index"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Description string    `json:"description" gorm:"type:text"`
	BannerURL   string    `json:"banner_url" gorm:"type:varchar(500)"`
	LogoURL     string    `json:"logo_url" gorm:"type:varchar(500)"`
	PriceRange  string    `json:"price_range" gorm:"type:varchar(50)"`
	Address     string    `json:"address" gorm:"type:varchar(255)"`
	City        string    `json:"city" gorm:"type:varchar(50);index"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Phone       string    `json:"phone" gorm:"type:varchar(20)"`
	Email       string    `json:"email" gorm:"type:varchar(100)"`
	Website     string    `json:"website" gorm:"type:varchar(255)"`
	Facebook    string    `json:"facebook" gorm:"type:varchar(255)"`
	Instagram   string    `json:"instagram" gorm:"type:varchar(255)"`
	WhatsApp    string    `json:"whatsapp" gorm:"type:varchar(50)"`

	IsPublished   bool       `json:"is_published" gorm:"default:true;index"`
	IsFeatured    bool       `json:"is_featured" gorm:"default:false;index"`
	FeaturedUntil *time.Time `json:"featured_until,omitempty"`

	Images   []Image   `json:"images,omitempty" gorm:"foreignKey:BusinessID"`
	Services []Service `json:"services,omitempty" gorm:"foreignKey:BusinessID"`
	Tags     []Tag     `json:"tags,omitempty" gorm:"many2many:business_tags;"`

	CreatedAt time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
