package impl

import (
	"context"
	"testing"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	mockRepo "foodbridge/internal/mocks/repository"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type preferenceServiceFixtures struct {
	service  usecase.PreferenceUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestPreferenceService(t *testing.T) preferenceServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewPreferenceService(userRepo)

	return preferenceServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func TestPreferenceService_GetPreferences(t *testing.T) {
	fx := createTestPreferenceService(t)

	ctx := context.Background()
	receiver := testReceiver()
	receiver.ID = uuid.New()

	fx.userRepo.EXPECT().FindReceiverByID(ctx, receiver.ID).Return(receiver, nil)

	prefs, err := fx.service.GetPreferences(ctx, receiver.ID)

	require.NoError(t, err)
	assert.Equal(t, receiver.Preferences, *prefs)
}

func TestPreferenceService_GetPreferences_NotFound(t *testing.T) {
	fx := createTestPreferenceService(t)

	ctx := context.Background()
	receiverID := uuid.New()

	fx.userRepo.EXPECT().FindReceiverByID(ctx, receiverID).Return(nil, repository.ErrReceiverNotFound)

	_, err := fx.service.GetPreferences(ctx, receiverID)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidReceiver)
}

func TestPreferenceService_UpdatePreferences_PartialUpdate(t *testing.T) {
	fx := createTestPreferenceService(t)

	ctx := context.Background()
	receiver := testReceiver()
	receiver.ID = uuid.New()

	maxDistance := 25.0
	notify := true
	input := &usecase.UpdatePreferencesInput{
		MaxDistanceKm: &maxDistance,
		NotifyOnMatch: &notify,
	}

	expected := receiver.Preferences
	expected.MaxDistanceKm = 25.0
	expected.NotifyOnMatch = true

	fx.userRepo.EXPECT().FindReceiverByID(ctx, receiver.ID).Return(receiver, nil)
	fx.userRepo.EXPECT().UpdatePreferences(ctx, receiver.ID, expected).Return(nil)

	prefs, err := fx.service.UpdatePreferences(ctx, receiver.ID, input)

	require.NoError(t, err)
	assert.Equal(t, expected, *prefs)
	// Untouched fields keep their stored values.
	assert.Equal(t, receiver.Preferences.DietaryPreferences, prefs.DietaryPreferences)
	assert.Equal(t, receiver.Preferences.MinServings, prefs.MinServings)
}

func TestPreferenceService_UpdatePreferences_ReplacesSets(t *testing.T) {
	fx := createTestPreferenceService(t)

	ctx := context.Background()
	receiver := testReceiver()
	receiver.ID = uuid.New()

	dietary := []entity.FoodType{entity.FoodTypeVegan, entity.FoodTypeVegetarian}
	empty := []entity.FoodCategory{}
	input := &usecase.UpdatePreferencesInput{
		DietaryPreferences:  &dietary,
		PreferredCategories: &empty,
	}

	expected := receiver.Preferences
	expected.DietaryPreferences = dietary
	expected.PreferredCategories = empty

	fx.userRepo.EXPECT().FindReceiverByID(ctx, receiver.ID).Return(receiver, nil)
	fx.userRepo.EXPECT().UpdatePreferences(ctx, receiver.ID, expected).Return(nil)

	prefs, err := fx.service.UpdatePreferences(ctx, receiver.ID, input)

	require.NoError(t, err)
	assert.Equal(t, dietary, prefs.DietaryPreferences)
	assert.Empty(t, prefs.PreferredCategories)
}

func TestPreferenceService_UpdatePreferences_InvalidServingsRange(t *testing.T) {
	fx := createTestPreferenceService(t)

	ctx := context.Background()
	receiver := testReceiver()
	receiver.ID = uuid.New()

	minServings := 30
	maxServings := 10
	input := &usecase.UpdatePreferencesInput{
		MinServings: &minServings,
		MaxServings: &maxServings,
	}

	fx.userRepo.EXPECT().FindReceiverByID(ctx, receiver.ID).Return(receiver, nil)

	_, err := fx.service.UpdatePreferences(ctx, receiver.ID, input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPreferenceService_GetMatchingStats(t *testing.T) {
	fx := createTestPreferenceService(t)

	ctx := context.Background()
	receiver := testReceiver()
	receiver.ID = uuid.New()
	receiver.Stats = entity.MatchingStats{
		TotalMatches:      8,
		SuccessfulClaims:  4,
		AverageMatchScore: 50,
	}

	fx.userRepo.EXPECT().FindReceiverByID(ctx, receiver.ID).Return(receiver, nil)

	stats, err := fx.service.GetMatchingStats(ctx, receiver.ID)

	require.NoError(t, err)
	assert.Equal(t, receiver.Stats, *stats)
}
