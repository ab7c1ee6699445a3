// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new match notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.MatchNotification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("invalid receiver or donation reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required notification information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationsByReceiver retrieves notifications for a receiver, newest
// first, with pagination.
func (repo *notificationRepository) FindNotificationsByReceiver(ctx context.Context, receiverID uuid.UUID, limit, offset int) ([]*entity.MatchNotification, error) {
	var notificationModels []*model.MatchNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by receiver")
	}

	notifications := make([]*entity.MatchNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM MatchNotificationModel to a domain MatchNotification entity.
func toNotificationDomain(data *model.MatchNotificationModel) *entity.MatchNotification {
	if data == nil {
		return nil
	}

	return &entity.MatchNotification{
		ID:              data.ID,
		ReceiverID:      data.ReceiverID,
		DonationID:      data.DonationID,
		Title:           data.Title,
		Message:         data.Message,
		Priority:        entity.NotificationPriority(data.Priority),
		MatchPercentage: data.MatchPercentage,
		Recommendation:  entity.RecommendationLevel(data.Recommendation),
		IsRead:          data.IsRead,
		CreatedAt:       data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain MatchNotification entity to a GORM MatchNotificationModel.
func fromNotificationDomain(notification *entity.MatchNotification) *model.MatchNotificationModel {
	if notification == nil {
		return nil
	}

	return &model.MatchNotificationModel{
		ID:              notification.ID,
		ReceiverID:      notification.ReceiverID,
		DonationID:      notification.DonationID,
		Title:           notification.Title,
		Message:         notification.Message,
		Priority:        string(notification.Priority),
		MatchPercentage: notification.MatchPercentage,
		Recommendation:  string(notification.Recommendation),
		IsRead:          notification.IsRead,
		CreatedAt:       notification.CreatedAt,
	}
}
