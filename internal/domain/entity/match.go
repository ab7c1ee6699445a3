// Package entity contains the core business objects of the project.
package entity

// RecommendationLevel is the qualitative bucket derived from a match
// percentage.
type RecommendationLevel string

const (
	RecommendationPerfect   RecommendationLevel = "perfect"   // >= 85%
	RecommendationExcellent RecommendationLevel = "excellent" // >= 70%
	RecommendationGood      RecommendationLevel = "good"      // >= 55%
	RecommendationFair      RecommendationLevel = "fair"      // >= 40%
	RecommendationLow       RecommendationLevel = "low"       // everything else
)

// RecommendationForPercentage maps a match percentage to its bucket.
func RecommendationForPercentage(percentage int) RecommendationLevel {
	switch {
	case percentage >= 85:
		return RecommendationPerfect
	case percentage >= 70:
		return RecommendationExcellent
	case percentage >= 55:
		return RecommendationGood
	case percentage >= 40:
		return RecommendationFair
	default:
		return RecommendationLow
	}
}

// ScoreBreakdown records the points awarded per factor. Each entry is
// bounded by its factor's weight cap; DistanceKm is the raw computed
// distance (1 decimal), not a score.
type ScoreBreakdown struct {
	DietaryMatch     int     `json:"dietaryMatch"`
	CategoryMatch    int     `json:"categoryMatch"`
	DistanceKm       float64 `json:"distance"`
	DistanceScore    int     `json:"distanceScore"`
	ServingsMatch    int     `json:"servingsMatch"`
	UrgencyScore     int     `json:"urgencyScore"`
	HistoricalScore  int     `json:"historicalScore"`
	DonorRatingBonus int     `json:"donorRatingBonus"`
	TimeMatch        int     `json:"timeMatch"`
}

// MatchResult is the ephemeral outcome of scoring one donation against one
// receiver. It is computed on demand and never persisted.
type MatchResult struct {
	Score          int                 `json:"score"`     // Sum of awarded points.
	MaxScore       int                 `json:"max_score"` // Sum of all factor weights.
	Percentage     int                 `json:"percentage"`
	Breakdown      ScoreBreakdown      `json:"breakdown"`
	Recommendation RecommendationLevel `json:"recommendation_level"`
}

// DonationMatch pairs a candidate donation with its match result for a
// receiver. Produced by the receiver-seeking pipeline.
type DonationMatch struct {
	Donation       *Donation           `json:"donation"`
	Score          int                 `json:"match_score"`
	Percentage     int                 `json:"match_percentage"`
	Breakdown      ScoreBreakdown      `json:"match_breakdown"`
	Recommendation RecommendationLevel `json:"recommendation_level"`
}

// ReceiverMatch pairs a candidate receiver with its match result for a
// donation. Produced by the donor-seeking pipeline.
type ReceiverMatch struct {
	Receiver       *Receiver           `json:"receiver"`
	Score          int                 `json:"match_score"`
	Percentage     int                 `json:"match_percentage"`
	Breakdown      ScoreBreakdown      `json:"match_breakdown"`
	Recommendation RecommendationLevel `json:"recommendation_level"`
}
