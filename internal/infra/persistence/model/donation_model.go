package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DonationModel is the GORM-specific struct for the 'donations' table.
// Longitude/Latitude hold the pickup point; (0,0) is the "no location
// recorded" sentinel written by the donation-creation fallback.
type DonationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DonorID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	FoodType    string    `gorm:"type:varchar(50);not null"`
	Category    string    `gorm:"type:varchar(50);not null"`
	Servings    int       `gorm:"not null"`
	Longitude   float64   `gorm:"type:decimal(11,8);not null;default:0"`
	Latitude    float64   `gorm:"type:decimal(10,8);not null;default:0"`
	ExpiresAt   time.Time `gorm:"not null;index"`
	IsUrgent    bool      `gorm:"not null;default:false"`
	Status      string    `gorm:"type:varchar(30);not null;default:'available';index"`
	ClaimedBy   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	// DonorRating is denormalized from the donor's user row at read time.
	DonorRating float64 `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (DonationModel) TableName() string {
	return "donations"
}
