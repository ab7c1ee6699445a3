// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// FoodType classifies the dietary nature of a donation.
type FoodType string

const (
	FoodTypeVegetarian    FoodType = "vegetarian"
	FoodTypeNonVegetarian FoodType = "non-vegetarian"
	FoodTypeVegan         FoodType = "vegan"
	FoodTypeMixed         FoodType = "mixed"
)

// FoodCategory classifies the kind of food being donated.
type FoodCategory string

const (
	CategoryCookedFood       FoodCategory = "cooked-food"
	CategoryRawFood          FoodCategory = "raw-food"
	CategoryPackagedFood     FoodCategory = "packaged-food"
	CategoryFruitsVegetables FoodCategory = "fruits-vegetables"
	CategoryBakery           FoodCategory = "bakery"
	CategoryOther            FoodCategory = "other"
)

// DonationStatus tracks a donation through its lifecycle. Only available
// donations are eligible for matching.
type DonationStatus string

const (
	DonationAvailable DonationStatus = "available"
	DonationClaimed   DonationStatus = "claimed"
	DonationCompleted DonationStatus = "completed"
	DonationExpired   DonationStatus = "expired"
	DonationCancelled DonationStatus = "cancelled"
)

// Donation represents a posted surplus-food offer. The matching engine reads
// donation snapshots; their lifecycle is owned by the donation CRUD layer.
type Donation struct {
	ID          uuid.UUID      `json:"id"`           // The Global Unique Identifier (GUID) for the donation.
	DonorID     uuid.UUID      `json:"donor_id"`     // The ID of the donor who posted the donation.
	Title       string         `json:"title"`        // Short human-readable title shown in match notifications.
	Description string         `json:"description"`  // Free-form description of the food.
	FoodType    FoodType       `json:"food_type"`    // Dietary classification, matched against receiver preferences.
	Category    FoodCategory   `json:"category"`     // Food category, matched against receiver preferences.
	Servings    int            `json:"servings"`     // Number of servings offered. Always positive.
	Pickup      orb.Point      `json:"pickup"`       // Pickup coordinates (lon, lat). The zero point means "no location recorded".
	ExpiresAt   time.Time      `json:"expires_at"`   // When the food is no longer safe to hand out.
	IsUrgent    bool           `json:"is_urgent"`    // Donor-flagged urgency, forces the top urgency bucket.
	Status      DonationStatus `json:"status"`       // Lifecycle status.
	DonorRating float64        `json:"donor_rating"` // Donor's rating (0-5), denormalized at read time. Zero means unrated.
	ClaimedBy   *uuid.UUID     `json:"claimed_by,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// HasPickupLocation reports whether the donation carries real pickup
// coordinates. The zero point (0,0) is the "no location recorded" sentinel
// written by the donation-creation fallback, not a real point in the Gulf of
// Guinea, and is excluded from geographic queries and distance scoring.
func (d *Donation) HasPickupLocation() bool {
	return d.Pickup.Lon() != 0 || d.Pickup.Lat() != 0
}

// HoursUntilExpiry returns the number of hours between now and the expiry
// time. Negative for already-expired donations.
func (d *Donation) HoursUntilExpiry(now time.Time) float64 {
	return d.ExpiresAt.Sub(now).Hours()
}
