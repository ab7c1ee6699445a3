// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository defines the interface for match-notification
// persistence.
type NotificationRepository interface {
	// CreateNotification persists a new match notification.
	CreateNotification(ctx context.Context, notification *entity.MatchNotification) error

	// FindNotificationsByReceiver retrieves notifications for a receiver,
	// newest first, with pagination.
	FindNotificationsByReceiver(ctx context.Context, receiverID uuid.UUID, limit, offset int) ([]*entity.MatchNotification, error)
}
