package impl

import (
	"testing"
	"time"

	"foodbridge/config"
	"foodbridge/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

// fixedNow is a Sunday 09:00 UTC, inside the morning pickup window.
var fixedNow = time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

func newTestScorer() *matchScorer {
	scorer := newMatchScorer(nil)
	scorer.now = func() time.Time { return fixedNow }

	return scorer
}

func testReceiver() *entity.Receiver {
	return &entity.Receiver{
		Name:     "Community Kitchen",
		Role:     entity.RoleReceiver,
		IsActive: true,
		Location: orb.Point{121.5654, 25.0330},
		Preferences: entity.MatchPreferences{
			DietaryPreferences:   []entity.FoodType{entity.FoodTypeVegetarian},
			PreferredCategories:  []entity.FoodCategory{entity.CategoryCookedFood},
			MaxDistanceKm:        10,
			PreferredPickupTimes: []entity.PickupWindow{entity.WindowMorning},
			MinServings:          2,
			MaxServings:          50,
		},
	}
}

func testDonation() *entity.Donation {
	return &entity.Donation{
		Title:       "Vegetable curry",
		FoodType:    entity.FoodTypeVegetarian,
		Category:    entity.CategoryCookedFood,
		Servings:    10,
		Pickup:      orb.Point{121.5654, 25.0330},
		ExpiresAt:   fixedNow.Add(3 * time.Hour),
		Status:      entity.DonationAvailable,
		DonorRating: 5,
	}
}

func TestScoreWeights_Total(t *testing.T) {
	assert.Equal(t, 145, defaultScoreWeights().Total())
}

func TestNewMatchScorer_ConfigOverrides(t *testing.T) {
	scorer := newMatchScorer(&config.MatchingConfig{
		Weights: &config.ScoreWeightsConfig{Dietary: 40},
	})

	// Explicit weights apply, unset weights keep their defaults.
	assert.Equal(t, 40, scorer.weights.Dietary)
	assert.Equal(t, 25, scorer.weights.Distance)
	assert.Equal(t, 155, scorer.weights.Total())
}

func TestMatchScorer_DietaryScore(t *testing.T) {
	scorer := newTestScorer()
	donation := testDonation()

	tests := []struct {
		name  string
		prefs []entity.FoodType
		want  int
	}{
		{name: "no preferences is neutral", prefs: nil, want: 15},
		{name: "explicit match", prefs: []entity.FoodType{entity.FoodTypeVegetarian}, want: 30},
		{name: "mixed accepts everything", prefs: []entity.FoodType{entity.FoodTypeMixed}, want: 30},
		{name: "mismatch", prefs: []entity.FoodType{entity.FoodTypeVegan}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			receiver := testReceiver()
			receiver.Preferences.DietaryPreferences = tt.prefs

			assert.Equal(t, tt.want, scorer.dietaryScore(donation, receiver))
		})
	}
}

func TestMatchScorer_CategoryScore(t *testing.T) {
	scorer := newTestScorer()
	donation := testDonation()

	tests := []struct {
		name  string
		prefs []entity.FoodCategory
		want  int
	}{
		{name: "no preferences is neutral", prefs: nil, want: 10},
		{name: "match", prefs: []entity.FoodCategory{entity.CategoryCookedFood}, want: 20},
		{name: "mismatch", prefs: []entity.FoodCategory{entity.CategoryBakery}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			receiver := testReceiver()
			receiver.Preferences.PreferredCategories = tt.prefs

			assert.Equal(t, tt.want, scorer.categoryScore(donation, receiver))
		})
	}
}

func TestMatchScorer_DistanceScore(t *testing.T) {
	scorer := newTestScorer()

	t.Run("same point gets full weight", func(t *testing.T) {
		distance, score := scorer.distanceScore(testDonation(), testReceiver())
		assert.Equal(t, 0.0, distance)
		assert.Equal(t, 25, score)
	})

	t.Run("decays with distance", func(t *testing.T) {
		donation := testDonation()
		receiver := testReceiver()
		// Roughly 2 km east along the equator.
		donation.Pickup = orb.Point{0, 0.00001}
		receiver.Location = orb.Point{0.018, 0.00001}

		distance, score := scorer.distanceScore(donation, receiver)
		assert.Equal(t, 2.0, distance)
		assert.Equal(t, 17, score)
	})

	t.Run("half the radius", func(t *testing.T) {
		donation := testDonation()
		receiver := testReceiver()
		donation.Pickup = orb.Point{0, 0.00001}
		receiver.Location = orb.Point{0.045, 0.00001}

		distance, score := scorer.distanceScore(donation, receiver)
		assert.Equal(t, 5.0, distance)
		assert.Equal(t, 9, score)
	})

	t.Run("beyond the radius scores zero but reports distance", func(t *testing.T) {
		donation := testDonation()
		receiver := testReceiver()
		receiver.Location = orb.Point{121.8, 25.0330}

		distance, score := scorer.distanceScore(donation, receiver)
		assert.Greater(t, distance, 10.0)
		assert.Equal(t, 0, score)
	})

	t.Run("missing pickup location scores zero", func(t *testing.T) {
		donation := testDonation()
		donation.Pickup = orb.Point{}

		distance, score := scorer.distanceScore(donation, testReceiver())
		assert.Equal(t, 0.0, distance)
		assert.Equal(t, 0, score)
	})
}

func TestMatchScorer_ServingsScore(t *testing.T) {
	scorer := newTestScorer()

	tests := []struct {
		name     string
		servings int
		min      int
		max      int
		want     int
	}{
		{name: "at minimum", servings: 5, min: 5, max: 20, want: 15},
		{name: "inside range", servings: 10, min: 5, max: 20, want: 15},
		{name: "two below minimum", servings: 3, min: 5, max: 20, want: 11},
		{name: "far below minimum floors at zero", servings: 1, min: 20, max: 50, want: 0},
		{name: "above maximum", servings: 25, min: 5, max: 20, want: 5},
		{name: "zero prefs fall back to defaults", servings: 10, min: 0, max: 0, want: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			donation := testDonation()
			donation.Servings = tt.servings
			receiver := testReceiver()
			receiver.Preferences.MinServings = tt.min
			receiver.Preferences.MaxServings = tt.max

			assert.Equal(t, tt.want, scorer.servingsScore(donation, receiver))
		})
	}
}

func TestMatchScorer_UrgencyScore(t *testing.T) {
	scorer := newTestScorer()

	tests := []struct {
		name      string
		expiresIn time.Duration
		isUrgent  bool
		want      int
	}{
		{name: "expiring soon", expiresIn: 3 * time.Hour, want: 10},
		{name: "urgent flag overrides long expiry", expiresIn: 48 * time.Hour, isUrgent: true, want: 10},
		{name: "expiring within a day", expiresIn: 12 * time.Hour, want: 7},
		{name: "plenty of time", expiresIn: 48 * time.Hour, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			donation := testDonation()
			donation.ExpiresAt = fixedNow.Add(tt.expiresIn)
			donation.IsUrgent = tt.isUrgent

			assert.Equal(t, tt.want, scorer.urgencyScore(donation, fixedNow))
		})
	}
}

func TestMatchScorer_HistoricalScore(t *testing.T) {
	scorer := newTestScorer()

	tests := []struct {
		name   string
		total  int
		claims int
		want   int
	}{
		{name: "new receiver", total: 0, claims: 0, want: 8},
		{name: "half claim rate", total: 10, claims: 5, want: 8},
		{name: "perfect claim rate", total: 4, claims: 4, want: 15},
		{name: "no claims yet still gets the starting score", total: 10, claims: 0, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			receiver := testReceiver()
			receiver.Stats = entity.MatchingStats{
				TotalMatches:     tt.total,
				SuccessfulClaims: tt.claims,
			}

			assert.Equal(t, tt.want, scorer.historicalScore(receiver))
		})
	}
}

func TestMatchScorer_DonorRatingScore(t *testing.T) {
	scorer := newTestScorer()

	tests := []struct {
		name   string
		rating float64
		want   int
	}{
		{name: "unrated donor is neutral", rating: 0, want: 5},
		{name: "top rated", rating: 5, want: 10},
		{name: "scaled", rating: 4.2, want: 8},
		{name: "average", rating: 3, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			donation := testDonation()
			donation.DonorRating = tt.rating

			assert.Equal(t, tt.want, scorer.donorRatingScore(donation))
		})
	}
}

func TestMatchScorer_TimeOfDayScore(t *testing.T) {
	scorer := newTestScorer()

	tests := []struct {
		name    string
		windows []entity.PickupWindow
		want    int
	}{
		{name: "preferred window", windows: []entity.PickupWindow{entity.WindowMorning}, want: 10},
		{name: "other window", windows: []entity.PickupWindow{entity.WindowEvening}, want: 5},
		{name: "no preference", windows: nil, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			receiver := testReceiver()
			receiver.Preferences.PreferredPickupTimes = tt.windows

			assert.Equal(t, tt.want, scorer.timeOfDayScore(receiver, fixedNow))
		})
	}
}

func TestMatchScorer_Score_StrongMatch(t *testing.T) {
	scorer := newTestScorer()

	result := scorer.Score(testDonation(), testReceiver())

	assert.Equal(t, entity.ScoreBreakdown{
		DietaryMatch:     30,
		CategoryMatch:    20,
		DistanceKm:       0,
		DistanceScore:    25,
		ServingsMatch:    15,
		UrgencyScore:     10,
		HistoricalScore:  8,
		DonorRatingBonus: 10,
		TimeMatch:        10,
	}, result.Breakdown)
	assert.Equal(t, 128, result.Score)
	assert.Equal(t, 145, result.MaxScore)
	assert.Equal(t, 88, result.Percentage)
	assert.Equal(t, entity.RecommendationPerfect, result.Recommendation)
}

func TestMatchScorer_Score_WeakMatch(t *testing.T) {
	scorer := newTestScorer()

	donation := testDonation()
	donation.FoodType = entity.FoodTypeNonVegetarian
	donation.Servings = 100
	donation.ExpiresAt = fixedNow.Add(48 * time.Hour)
	donation.DonorRating = 0

	receiver := testReceiver()
	receiver.Preferences.DietaryPreferences = []entity.FoodType{entity.FoodTypeVegan}
	receiver.Preferences.PreferredCategories = []entity.FoodCategory{entity.CategoryBakery}
	receiver.Preferences.PreferredPickupTimes = []entity.PickupWindow{entity.WindowEvening}
	receiver.Preferences.MaxServings = 20
	receiver.Location = orb.Point{121.8, 25.0330}
	receiver.Stats = entity.MatchingStats{TotalMatches: 10, SuccessfulClaims: 1}

	result := scorer.Score(donation, receiver)

	// 0 dietary + 0 category + 0 distance + 5 servings + 5 urgency +
	// 2 history + 5 rating + 5 time
	assert.Equal(t, 22, result.Score)
	assert.Equal(t, 15, result.Percentage)
	assert.Equal(t, entity.RecommendationLow, result.Recommendation)
}
