package impl

import (
	"math"
	"time"

	"foodbridge/config"
	"foodbridge/internal/domain/entity"
	"foodbridge/internal/geo"
)

const (
	// fallback defaults applied when a receiver has no explicit preference
	defaultMaxDistanceKm = 10.0
	defaultMinServings   = 1
	defaultMaxServings   = 100

	// points for a receiver with no recorded match history
	newReceiverHistoryScore = 8
)

// ScoreWeights caps the points each factor can contribute to a match score.
type ScoreWeights struct {
	Dietary     int
	Category    int
	Distance    int
	Servings    int
	Urgency     int
	History     int
	DonorRating int
	TimeOfDay   int
}

// Total returns the maximum achievable score.
func (w ScoreWeights) Total() int {
	return w.Dietary + w.Category + w.Distance + w.Servings +
		w.Urgency + w.History + w.DonorRating + w.TimeOfDay
}

func defaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Dietary:     30,
		Category:    20,
		Distance:    25,
		Servings:    15,
		Urgency:     10,
		History:     15,
		DonorRating: 10,
		TimeOfDay:   10,
	}
}

// matchScorer computes the weighted compatibility score between a donation
// and a receiver. It is stateless apart from its clock and safe for
// concurrent use.
type matchScorer struct {
	weights ScoreWeights
	now     func() time.Time
}

func newMatchScorer(cfg *config.MatchingConfig) *matchScorer {
	weights := defaultScoreWeights()
	if cfg != nil && cfg.Weights != nil {
		weights = scoreWeightsFromConfig(cfg.Weights)
	}

	return &matchScorer{
		weights: weights,
		now:     time.Now,
	}
}

func scoreWeightsFromConfig(cfg *config.ScoreWeightsConfig) ScoreWeights {
	defaults := defaultScoreWeights()
	pick := func(v, fallback int) int {
		if v > 0 {
			return v
		}

		return fallback
	}

	return ScoreWeights{
		Dietary:     pick(cfg.Dietary, defaults.Dietary),
		Category:    pick(cfg.Category, defaults.Category),
		Distance:    pick(cfg.Distance, defaults.Distance),
		Servings:    pick(cfg.Servings, defaults.Servings),
		Urgency:     pick(cfg.Urgency, defaults.Urgency),
		History:     pick(cfg.History, defaults.History),
		DonorRating: pick(cfg.DonorRating, defaults.DonorRating),
		TimeOfDay:   pick(cfg.TimeOfDay, defaults.TimeOfDay),
	}
}

// Score computes the full breakdown for one donation-receiver pair.
func (m *matchScorer) Score(donation *entity.Donation, receiver *entity.Receiver) *entity.MatchResult {
	now := m.now()

	breakdown := entity.ScoreBreakdown{
		DietaryMatch:     m.dietaryScore(donation, receiver),
		CategoryMatch:    m.categoryScore(donation, receiver),
		ServingsMatch:    m.servingsScore(donation, receiver),
		UrgencyScore:     m.urgencyScore(donation, now),
		HistoricalScore:  m.historicalScore(receiver),
		DonorRatingBonus: m.donorRatingScore(donation),
		TimeMatch:        m.timeOfDayScore(receiver, now),
	}
	breakdown.DistanceKm, breakdown.DistanceScore = m.distanceScore(donation, receiver)

	score := breakdown.DietaryMatch + breakdown.CategoryMatch + breakdown.DistanceScore +
		breakdown.ServingsMatch + breakdown.UrgencyScore + breakdown.HistoricalScore +
		breakdown.DonorRatingBonus + breakdown.TimeMatch

	maxScore := m.weights.Total()
	percentage := int(math.Round(float64(score) / float64(maxScore) * 100))

	return &entity.MatchResult{
		Score:          score,
		MaxScore:       maxScore,
		Percentage:     percentage,
		Breakdown:      breakdown,
		Recommendation: entity.RecommendationForPercentage(percentage),
	}
}

// dietaryScore awards the full weight for an explicit food-type match, half
// for a receiver with no dietary preferences, and nothing for a mismatch.
func (m *matchScorer) dietaryScore(donation *entity.Donation, receiver *entity.Receiver) int {
	if len(receiver.Preferences.DietaryPreferences) == 0 {
		return m.weights.Dietary / 2
	}
	if receiver.Preferences.AcceptsFoodType(donation.FoodType) {
		return m.weights.Dietary
	}

	return 0
}

func (m *matchScorer) categoryScore(donation *entity.Donation, receiver *entity.Receiver) int {
	if len(receiver.Preferences.PreferredCategories) == 0 {
		return m.weights.Category / 2
	}
	if receiver.Preferences.PrefersCategory(donation.Category) {
		return m.weights.Category
	}

	return 0
}

// distanceScore decays exponentially with distance, halving roughly every
// quarter of the receiver's radius, and drops to zero beyond it. Returns the
// raw distance alongside the score so callers can surface it.
func (m *matchScorer) distanceScore(donation *entity.Donation, receiver *entity.Receiver) (float64, int) {
	if !donation.HasPickupLocation() || !receiver.HasLocation() {
		return 0, 0
	}

	distanceKm := geo.DistanceKm(donation.Pickup, receiver.Location)

	maxDistance := receiver.Preferences.MaxDistanceKm
	if maxDistance <= 0 {
		maxDistance = defaultMaxDistanceKm
	}

	if distanceKm > maxDistance {
		return distanceKm, 0
	}

	decayed := float64(m.weights.Distance) * math.Exp(-distanceKm/(maxDistance/2))

	return distanceKm, int(math.Round(decayed))
}

// servingsScore awards the full weight inside the receiver's range, shrinks
// by two points per missing serving below the minimum, and gives a small
// consolation above the maximum since oversupply is still usable.
func (m *matchScorer) servingsScore(donation *entity.Donation, receiver *entity.Receiver) int {
	minServings := receiver.Preferences.MinServings
	if minServings <= 0 {
		minServings = defaultMinServings
	}
	maxServings := receiver.Preferences.MaxServings
	if maxServings <= 0 {
		maxServings = defaultMaxServings
	}

	switch {
	case donation.Servings >= minServings && donation.Servings <= maxServings:
		return m.weights.Servings
	case donation.Servings < minServings:
		return max(0, m.weights.Servings-2*(minServings-donation.Servings))
	default:
		return 5
	}
}

func (m *matchScorer) urgencyScore(donation *entity.Donation, now time.Time) int {
	hours := donation.HoursUntilExpiry(now)

	switch {
	case donation.IsUrgent || hours < 6:
		return m.weights.Urgency
	case hours < 24:
		return 7
	default:
		return 5
	}
}

// historicalScore scales with the receiver's claim success ratio. Receivers
// who have never claimed get a slightly-above-half starting score so they
// are not shut out of matches.
func (m *matchScorer) historicalScore(receiver *entity.Receiver) int {
	stats := receiver.Stats
	if stats.SuccessfulClaims == 0 {
		return newReceiverHistoryScore
	}

	total := stats.TotalMatches
	if total == 0 {
		total = 1
	}
	ratio := float64(stats.SuccessfulClaims) / float64(total)

	return int(math.Round(float64(m.weights.History) * ratio))
}

func (m *matchScorer) donorRatingScore(donation *entity.Donation) int {
	if donation.DonorRating <= 0 {
		// Unrated donors get a neutral half score.
		return m.weights.DonorRating / 2
	}

	return int(math.Round(float64(m.weights.DonorRating) * donation.DonorRating / 5))
}

func (m *matchScorer) timeOfDayScore(receiver *entity.Receiver, now time.Time) int {
	window := entity.WindowForHour(now.Hour())
	if receiver.Preferences.PrefersWindow(window) {
		return m.weights.TimeOfDay
	}

	return m.weights.TimeOfDay / 2
}
