// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRepository defines the interface for push-device database
// operations. Device registration is owned by the excluded CRUD layer; the
// matching engine reads tokens for delivery and retires invalid ones.
type DeviceRepository interface {
	// FindDevicesForUsers retrieves all active devices for a list of user
	// IDs. Used for batch fetching devices for notification sending.
	FindDevicesForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// DeleteDevice removes a device by its ID (soft delete). Used to retire
	// devices whose FCM token came back invalid or unregistered.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
