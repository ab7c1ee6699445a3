// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindReceiverByID retrieves a user by ID together with the matching
// preferences and statistics snapshot.
func (repo *userRepository) FindReceiverByID(ctx context.Context, id uuid.UUID) (*entity.Receiver, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReceiverNotFound
		}

		return nil, errors.Wrap(err, "failed to find receiver by ID")
	}

	return toReceiverDomain(&userM), nil
}

// FindAutoMatchReceiversWithinRadius finds active receivers with auto-matching
// enabled whose location lies within radiusKm kilometers of the center,
// ordered nearest-first. Rows carrying the (0,0) location sentinel are
// excluded.
func (repo *userRepository) FindAutoMatchReceiversWithinRadius(ctx context.Context, center orb.Point, radiusKm float64) ([]*entity.Receiver, error) {
	var userModels []*model.UserModel

	// Use PostGIS ST_DWithin with geography casts so the radius is measured
	// in meters along the spheroid rather than in degrees.
	query := `
		SELECT u.*
		FROM users u
		WHERE u.role = 'receiver'
		  AND u.is_active = true
		  AND u.deleted_at IS NULL
		  AND (u.preferences ->> 'auto_match_enabled')::boolean = true
		  AND NOT (u.longitude = 0 AND u.latitude = 0)
		  AND ST_DWithin(
		    ST_SetSRID(ST_MakePoint(u.longitude, u.latitude), 4326)::geography,
		    ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
		    ?
		  )
		ORDER BY ST_Distance(
		  ST_SetSRID(ST_MakePoint(u.longitude, u.latitude), 4326)::geography,
		  ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography
		) ASC
	`

	radiusMeters := radiusKm * 1000

	if err := repo.db.WithContext(ctx).
		Raw(query, center.Lon(), center.Lat(), radiusMeters, center.Lon(), center.Lat()).
		Scan(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find auto-match receivers within radius")
	}

	receivers := make([]*entity.Receiver, 0, len(userModels))
	for _, userM := range userModels {
		receivers = append(receivers, toReceiverDomain(userM))
	}

	return receivers, nil
}

// UpdatePreferences persists a receiver's matching preferences.
func (repo *userRepository) UpdatePreferences(ctx context.Context, id uuid.UUID, prefs entity.MatchPreferences) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("preferences", fromPreferencesDomain(prefs))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update preferences")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReceiverNotFound
	}

	return nil
}

// UpdateMatchingStats persists a receiver's rolling match statistics.
func (repo *userRepository) UpdateMatchingStats(ctx context.Context, id uuid.UUID, stats entity.MatchingStats) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_matches":       stats.TotalMatches,
			"successful_claims":   stats.SuccessfulClaims,
			"last_matched_at":     stats.LastMatchedAt,
			"average_match_score": stats.AverageMatchScore,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update matching stats")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReceiverNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toReceiverDomain converts a GORM UserModel to a domain Receiver entity.
func toReceiverDomain(data *model.UserModel) *entity.Receiver {
	if data == nil {
		return nil
	}

	return &entity.Receiver{
		ID:          data.ID,
		Name:        data.Name,
		Role:        entity.Role(data.Role),
		IsActive:    data.IsActive,
		Location:    orb.Point{data.Longitude, data.Latitude},
		Preferences: toPreferencesDomain(data.Preferences),
		Stats: entity.MatchingStats{
			TotalMatches:      data.TotalMatches,
			SuccessfulClaims:  data.SuccessfulClaims,
			LastMatchedAt:     data.LastMatchedAt,
			AverageMatchScore: data.AverageMatchScore,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toPreferencesDomain converts the JSONB preferences column to the domain
// MatchPreferences value.
func toPreferencesDomain(data model.PreferencesColumn) entity.MatchPreferences {
	dietary := make([]entity.FoodType, 0, len(data.DietaryPreferences))
	for _, ft := range data.DietaryPreferences {
		dietary = append(dietary, entity.FoodType(ft))
	}

	categories := make([]entity.FoodCategory, 0, len(data.PreferredCategories))
	for _, c := range data.PreferredCategories {
		categories = append(categories, entity.FoodCategory(c))
	}

	windows := make([]entity.PickupWindow, 0, len(data.PreferredPickupTimes))
	for _, w := range data.PreferredPickupTimes {
		windows = append(windows, entity.PickupWindow(w))
	}

	return entity.MatchPreferences{
		DietaryPreferences:   dietary,
		PreferredCategories:  categories,
		MaxDistanceKm:        data.MaxDistanceKm,
		PreferredPickupTimes: windows,
		MinServings:          data.MinServings,
		MaxServings:          data.MaxServings,
		NotifyOnMatch:        data.NotifyOnMatch,
		AutoMatchEnabled:     data.AutoMatchEnabled,
	}
}

// fromPreferencesDomain converts domain MatchPreferences to the JSONB
// preferences column.
func fromPreferencesDomain(prefs entity.MatchPreferences) model.PreferencesColumn {
	dietary := make([]string, 0, len(prefs.DietaryPreferences))
	for _, ft := range prefs.DietaryPreferences {
		dietary = append(dietary, string(ft))
	}

	categories := make([]string, 0, len(prefs.PreferredCategories))
	for _, c := range prefs.PreferredCategories {
		categories = append(categories, string(c))
	}

	windows := make([]string, 0, len(prefs.PreferredPickupTimes))
	for _, w := range prefs.PreferredPickupTimes {
		windows = append(windows, string(w))
	}

	return model.PreferencesColumn{
		DietaryPreferences:   dietary,
		PreferredCategories:  categories,
		MaxDistanceKm:        prefs.MaxDistanceKm,
		PreferredPickupTimes: windows,
		MinServings:          prefs.MinServings,
		MaxServings:          prefs.MaxServings,
		NotifyOnMatch:        prefs.NotifyOnMatch,
		AutoMatchEnabled:     prefs.AutoMatchEnabled,
	}
}
