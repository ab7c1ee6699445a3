// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Domain-specific errors for user persistence.
var (
	// ErrReceiverNotFound is returned when a receiver is not found.
	ErrReceiverNotFound = errors.New("receiver not found")
)

// UserRepository defines the interface for receiver-related database
// operations. User account management lives in the excluded CRUD layer;
// the matching engine reads receiver snapshots and writes preference and
// statistics updates.
type UserRepository interface {
	// FindReceiverByID retrieves a user by ID together with the matching
	// preferences and statistics snapshot. Returns ErrReceiverNotFound when
	// no user matches the ID.
	FindReceiverByID(ctx context.Context, id uuid.UUID) (*entity.Receiver, error)

	// FindAutoMatchReceiversWithinRadius performs a PostGIS geographic query
	// returning active receivers with auto-matching enabled whose location
	// lies within radiusKm kilometers of the center, ordered nearest-first.
	// Receivers carrying the (0,0) "no location" sentinel are never returned.
	FindAutoMatchReceiversWithinRadius(ctx context.Context, center orb.Point, radiusKm float64) ([]*entity.Receiver, error)

	// UpdatePreferences persists a receiver's matching preferences.
	UpdatePreferences(ctx context.Context, id uuid.UUID, prefs entity.MatchPreferences) error

	// UpdateMatchingStats persists a receiver's rolling match statistics.
	UpdateMatchingStats(ctx context.Context, id uuid.UUID, stats entity.MatchingStats) error
}
