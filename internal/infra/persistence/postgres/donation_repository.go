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

// donationRepository implements the repository.DonationRepository interface.
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository is the constructor for donationRepository.
func NewDonationRepository(db *gorm.DB) repository.DonationRepository {
	return &donationRepository{
		db: db,
	}
}

// FindDonationByID retrieves a donation by its unique ID with the donor's
// rating denormalized onto the result.
func (repo *donationRepository) FindDonationByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	var donationM model.DonationModel

	query := `
		SELECT d.*, COALESCE(u.rating, 0) AS donor_rating
		FROM donations d
		LEFT JOIN users u ON u.id = d.donor_id AND u.deleted_at IS NULL
		WHERE d.id = ?
		  AND d.deleted_at IS NULL
	`

	result := repo.db.WithContext(ctx).Raw(query, id).Scan(&donationM)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find donation by ID")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrDonationNotFound
	}

	return toDonationDomain(&donationM), nil
}

// FindAvailableWithinRadius finds available donations whose pickup point lies
// within radiusKm kilometers of the center, ordered nearest-first. Rows
// carrying the (0,0) location sentinel are excluded so the fallback point off
// the African coast never enters geographic results.
func (repo *donationRepository) FindAvailableWithinRadius(ctx context.Context, center orb.Point, radiusKm float64, limit int) ([]*entity.Donation, error) {
	var donationModels []*model.DonationModel

	// Use PostGIS ST_DWithin with geography casts so the radius is measured
	// in meters along the spheroid rather than in degrees.
	query := `
		SELECT d.*, COALESCE(u.rating, 0) AS donor_rating
		FROM donations d
		LEFT JOIN users u ON u.id = d.donor_id AND u.deleted_at IS NULL
		WHERE d.status = 'available'
		  AND d.deleted_at IS NULL
		  AND NOT (d.longitude = 0 AND d.latitude = 0)
		  AND ST_DWithin(
		    ST_SetSRID(ST_MakePoint(d.longitude, d.latitude), 4326)::geography,
		    ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
		    ?
		  )
		ORDER BY ST_Distance(
		  ST_SetSRID(ST_MakePoint(d.longitude, d.latitude), 4326)::geography,
		  ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography
		) ASC
		LIMIT ?
	`

	radiusMeters := radiusKm * 1000

	if err := repo.db.WithContext(ctx).
		Raw(query, center.Lon(), center.Lat(), radiusMeters, center.Lon(), center.Lat(), limit).
		Scan(&donationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find available donations within radius")
	}

	donations := make([]*entity.Donation, 0, len(donationModels))
	for _, donationM := range donationModels {
		donations = append(donations, toDonationDomain(donationM))
	}

	return donations, nil
}

// MarkClaimed transitions an available donation to claimed by the given
// receiver. The status guard makes the transition race-safe: a donation
// claimed by a concurrent request no longer matches and the update affects
// zero rows.
func (repo *donationRepository) MarkClaimed(ctx context.Context, id, receiverID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Where("id = ? AND status = ?", id, string(entity.DonationAvailable)).
		Updates(map[string]any{
			"status":     string(entity.DonationClaimed),
			"claimed_by": receiverID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark donation claimed")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDonationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDonationDomain converts a GORM DonationModel to a domain Donation entity.
func toDonationDomain(data *model.DonationModel) *entity.Donation {
	if data == nil {
		return nil
	}

	return &entity.Donation{
		ID:          data.ID,
		DonorID:     data.DonorID,
		Title:       data.Title,
		Description: data.Description,
		FoodType:    entity.FoodType(data.FoodType),
		Category:    entity.FoodCategory(data.Category),
		Servings:    data.Servings,
		Pickup:      orb.Point{data.Longitude, data.Latitude},
		ExpiresAt:   data.ExpiresAt,
		IsUrgent:    data.IsUrgent,
		Status:      entity.DonationStatus(data.Status),
		DonorRating: data.DonorRating,
		ClaimedBy:   data.ClaimedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
