// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// PickupWindow buckets the hours of a day for pickup-time preferences.
type PickupWindow string

const (
	WindowMorning   PickupWindow = "morning"   // 06:00-11:59
	WindowAfternoon PickupWindow = "afternoon" // 12:00-16:59
	WindowEvening   PickupWindow = "evening"   // 17:00-20:59
	WindowNight     PickupWindow = "night"     // everything else
)

// WindowForHour classifies a wall-clock hour into its pickup window.
func WindowForHour(hour int) PickupWindow {
	switch {
	case hour >= 6 && hour < 12:
		return WindowMorning
	case hour >= 12 && hour < 17:
		return WindowAfternoon
	case hour >= 17 && hour < 21:
		return WindowEvening
	default:
		return WindowNight
	}
}

// MatchPreferences holds a receiver's stated matching preferences.
// Empty preference sets mean "no restriction" and score neutrally.
type MatchPreferences struct {
	DietaryPreferences   []FoodType     `json:"dietary_preferences"`    // Acceptable food types. Empty = no restriction.
	PreferredCategories  []FoodCategory `json:"preferred_categories"`   // Preferred food categories. Empty = no restriction.
	MaxDistanceKm        float64        `json:"max_distance_km"`        // Search radius in kilometers. Zero falls back to the 10 km default.
	PreferredPickupTimes []PickupWindow `json:"preferred_pickup_times"` // Pickup windows the receiver can make.
	MinServings          int            `json:"min_servings"`           // Smallest useful donation. Zero falls back to 1.
	MaxServings          int            `json:"max_servings"`           // Largest manageable donation. Zero falls back to 100.
	NotifyOnMatch        bool           `json:"notify_on_match"`        // Whether match notifications should be delivered.
	AutoMatchEnabled     bool           `json:"auto_match_enabled"`     // Gate for the donor-seeking pipeline.
}

// AcceptsFoodType reports whether the donation food type passes the
// receiver's dietary preferences. A preference set containing "mixed"
// accepts everything.
func (p MatchPreferences) AcceptsFoodType(ft FoodType) bool {
	return slices.Contains(p.DietaryPreferences, ft) ||
		slices.Contains(p.DietaryPreferences, FoodTypeMixed)
}

// PrefersCategory reports whether the category is in the preferred set.
func (p MatchPreferences) PrefersCategory(c FoodCategory) bool {
	return slices.Contains(p.PreferredCategories, c)
}

// PrefersWindow reports whether the pickup window is in the preferred set.
func (p MatchPreferences) PrefersWindow(w PickupWindow) bool {
	return slices.Contains(p.PreferredPickupTimes, w)
}

// MatchingStats holds a receiver's rolling match-success metrics.
// Mutated only by the statistics tracker.
type MatchingStats struct {
	TotalMatches      int        `json:"total_matches"`       // Matches ever offered to this receiver.
	SuccessfulClaims  int        `json:"successful_claims"`   // Matches that ended in a completed claim.
	LastMatchedAt     *time.Time `json:"last_matched_at"`     // When an outcome was last recorded.
	AverageMatchScore int        `json:"average_match_score"` // round(100 * successful / total).
}

// Receiver represents a user in the receiver role together with the
// preference and statistics snapshot the matching engine reads.
type Receiver struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Role        Role             `json:"role"`
	IsActive    bool             `json:"is_active"`
	Location    orb.Point        `json:"location"` // Receiver coordinates (lon, lat). The zero point means unknown.
	Preferences MatchPreferences `json:"preferences"`
	Stats       MatchingStats    `json:"matching_stats"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// HasLocation reports whether the receiver carries real coordinates.
// The zero point is the "unknown" sentinel, see Donation.HasPickupLocation.
func (r *Receiver) HasLocation() bool {
	return r.Location.Lon() != 0 || r.Location.Lat() != 0
}
