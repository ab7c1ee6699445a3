package model

import (
	"time"

	"github.com/google/uuid"
)

// MatchNotificationModel is the GORM-specific struct for the 'match_notifications' table.
type MatchNotificationModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ReceiverID      uuid.UUID `gorm:"type:uuid;not null;index"`
	DonationID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Message         string    `gorm:"type:text;not null"`
	Priority        string    `gorm:"type:varchar(20);not null;default:'medium'"`
	MatchPercentage int       `gorm:"not null"`
	Recommendation  string    `gorm:"type:varchar(20);not null"`
	IsRead          bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (MatchNotificationModel) TableName() string {
	return "match_notifications"
}
