package model

import (
	"time"

	"gorm.io/gorm"
)

// Professional represents an individual practitioner listing
type Professional struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"user_id" gorm:"index;not null"`
	Name            string    `json:"name" gorm:"type:varchar(255);not null"`
	Slug            string    `json:"slug" gorm:"type:varchar(255);uniqueIndex;not null"`
	CategoryID      *uint     `json:"category_id,omitempty" gorm:"index"`
	Category        *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Specialization  string    `json:"specialization" gorm:"type:varchar(255)"`
	Description     string    `json:"description" gorm:"type:text"`
	PhotoURL        string    `json:"photo_url" gorm:"type:varchar(500)"`
	Qualification   string    `json:"qualification" gorm:"type:varchar(255)"`
	ExperienceYears *int      `json:"experience_years,omitempty"`
	ClinicName      string    `json:"clinic_name" gorm:"type:varchar(255)"`
	ClinicAddress   string    `json:"clinic_address" gorm:"type:varchar(255)"`
	City            string    `json:"city" gorm:"type:varchar(50);index"`
	ConsultationFee string    `json:"consultation_fee" gorm:"type:varchar(50)"`
	Phone           string    `json:"phone" gorm:"type:varchar(20)"`
	Email           string    `json:"email" gorm:"type:varchar(100)"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
