// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPriority orders notifications for in-app display.
type NotificationPriority string

const (
	PriorityHigh   NotificationPriority = "high"
	PriorityMedium NotificationPriority = "medium"
	PriorityLow    NotificationPriority = "low"
)

// MatchNotification is a persisted in-app notification telling a receiver
// that a donation matched their preferences.
type MatchNotification struct {
	ID              uuid.UUID            `json:"id"`
	ReceiverID      uuid.UUID            `json:"receiver_id"`
	DonationID      uuid.UUID            `json:"donation_id"`
	Title           string               `json:"title"`
	Message         string               `json:"message"`
	Priority        NotificationPriority `json:"priority"`
	MatchPercentage int                  `json:"match_percentage"`
	Recommendation  RecommendationLevel  `json:"recommendation_level"`
	IsRead          bool                 `json:"is_read"`
	CreatedAt       time.Time            `json:"created_at"`
}
