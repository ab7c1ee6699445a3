// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Domain-specific errors for donation persistence.
var (
	// ErrDonationNotFound is returned when a donation is not found.
	ErrDonationNotFound = errors.New("donation not found")
)

// DonationRepository defines the interface for donation-related database
// operations the matching engine depends on. The donation CRUD lifecycle is
// owned elsewhere; the engine only reads snapshots and flips the claim state.
type DonationRepository interface {
	// FindDonationByID retrieves a donation by its unique ID with the donor's
	// rating denormalized onto the result.
	FindDonationByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error)

	// FindAvailableWithinRadius performs a PostGIS geographic query returning
	// available donations whose pickup point lies within radiusKm kilometers
	// of the center, ordered nearest-first and capped at limit. Donations
	// carrying the (0,0) "no location" sentinel are never returned.
	FindAvailableWithinRadius(ctx context.Context, center orb.Point, radiusKm float64, limit int) ([]*entity.Donation, error)

	// MarkClaimed transitions an available donation to claimed by the given
	// receiver. Returns ErrDonationNotFound when no available donation
	// matches the ID.
	MarkClaimed(ctx context.Context, id, receiverID uuid.UUID) error
}
