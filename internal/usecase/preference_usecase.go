package usecase

import (
	"context"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// PreferenceUsecase defines the interface for receiver preference and
// statistics operations.
type PreferenceUsecase interface {
	GetPreferences(ctx context.Context, receiverID uuid.UUID) (*entity.MatchPreferences, error)
	UpdatePreferences(ctx context.Context, receiverID uuid.UUID, input *UpdatePreferencesInput) (*entity.MatchPreferences, error)
	GetMatchingStats(ctx context.Context, receiverID uuid.UUID) (*entity.MatchingStats, error)
}

// --- Input DTOs ---

// UpdatePreferencesInput defines the data required to update match preferences.
// Nil fields are left unchanged.
type UpdatePreferencesInput struct {
	DietaryPreferences   *[]entity.FoodType     `json:"dietary_preferences,omitempty"`
	PreferredCategories  *[]entity.FoodCategory `json:"preferred_categories,omitempty"`
	MaxDistanceKm        *float64               `json:"max_distance_km,omitempty" validate:"omitempty,gt=0"`
	PreferredPickupTimes *[]entity.PickupWindow `json:"preferred_pickup_times,omitempty"`
	MinServings          *int                   `json:"min_servings,omitempty" validate:"omitempty,gte=0"`
	MaxServings          *int                   `json:"max_servings,omitempty" validate:"omitempty,gte=0"`
	NotifyOnMatch        *bool                  `json:"notify_on_match,omitempty"`
	AutoMatchEnabled     *bool                  `json:"auto_match_enabled,omitempty"`
}
