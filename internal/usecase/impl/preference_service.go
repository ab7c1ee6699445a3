package impl

import (
	"context"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/errors"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
)

type preferenceService struct {
	userRepo repository.UserRepository
}

// NewPreferenceService creates a new preference service instance
func NewPreferenceService(userRepo repository.UserRepository) usecase.PreferenceUsecase {
	return &preferenceService{
		userRepo: userRepo,
	}
}

// GetPreferences returns a receiver's stored matching preferences.
func (s *preferenceService) GetPreferences(ctx context.Context, receiverID uuid.UUID) (*entity.MatchPreferences, error) {
	receiver, err := s.findReceiver(ctx, receiverID)
	if err != nil {
		return nil, err
	}

	prefs := receiver.Preferences

	return &prefs, nil
}

// UpdatePreferences applies a partial preference update. Nil input fields
// keep their stored values.
func (s *preferenceService) UpdatePreferences(ctx context.Context, receiverID uuid.UUID, input *usecase.UpdatePreferencesInput) (*entity.MatchPreferences, error) {
	receiver, err := s.findReceiver(ctx, receiverID)
	if err != nil {
		return nil, err
	}

	prefs := receiver.Preferences
	applyPreferenceUpdates(&prefs, input)

	if prefs.MinServings > 0 && prefs.MaxServings > 0 && prefs.MinServings > prefs.MaxServings {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "min_servings cannot exceed max_servings")
	}

	if err := s.userRepo.UpdatePreferences(ctx, receiverID, prefs); err != nil {
		return nil, errors.Wrap(err, "failed to update preferences")
	}

	return &prefs, nil
}

// GetMatchingStats returns a receiver's rolling match statistics.
func (s *preferenceService) GetMatchingStats(ctx context.Context, receiverID uuid.UUID) (*entity.MatchingStats, error) {
	receiver, err := s.findReceiver(ctx, receiverID)
	if err != nil {
		return nil, err
	}

	stats := receiver.Stats

	return &stats, nil
}

func (s *preferenceService) findReceiver(ctx context.Context, id uuid.UUID) (*entity.Receiver, error) {
	receiver, err := s.userRepo.FindReceiverByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReceiverNotFound) {
			return nil, domainerrors.ErrInvalidReceiver
		}

		return nil, errors.Wrap(err, "failed to find receiver")
	}

	if receiver.Role != entity.RoleReceiver {
		return nil, domainerrors.ErrInvalidReceiver
	}

	return receiver, nil
}

// applyPreferenceUpdates copies the provided fields onto prefs, leaving nil
// fields untouched.
func applyPreferenceUpdates(prefs *entity.MatchPreferences, input *usecase.UpdatePreferencesInput) {
	if input.DietaryPreferences != nil {
		prefs.DietaryPreferences = *input.DietaryPreferences
	}
	if input.PreferredCategories != nil {
		prefs.PreferredCategories = *input.PreferredCategories
	}
	if input.MaxDistanceKm != nil {
		prefs.MaxDistanceKm = *input.MaxDistanceKm
	}
	if input.PreferredPickupTimes != nil {
		prefs.PreferredPickupTimes = *input.PreferredPickupTimes
	}
	if input.MinServings != nil {
		prefs.MinServings = *input.MinServings
	}
	if input.MaxServings != nil {
		prefs.MaxServings = *input.MaxServings
	}
	if input.NotifyOnMatch != nil {
		prefs.NotifyOnMatch = *input.NotifyOnMatch
	}
	if input.AutoMatchEnabled != nil {
		prefs.AutoMatchEnabled = *input.AutoMatchEnabled
	}
}
