package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	mockusecase "foodbridge/internal/mocks/usecase"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPreferenceHandler_GetPreferences(t *testing.T) {
	receiverID := uuid.New()
	preferenceUC := mockusecase.NewMockPreferenceUsecase(t)
	handler := NewPreferenceHandler(PreferenceHandlerParams{
		PreferenceUC: preferenceUC,
		Logger:       slog.Default(),
	})

	prefs := &entity.MatchPreferences{
		DietaryPreferences: []entity.FoodType{entity.FoodTypeVegetarian},
		MaxDistanceKm:      15,
		MinServings:        2,
		MaxServings:        40,
		NotifyOnMatch:      true,
	}
	preferenceUC.EXPECT().
		GetPreferences(mock.Anything, receiverID).
		Return(prefs, nil)

	c, rec := newTestContext(t, http.MethodGet, "/matching/preferences", nil)
	c.Set("userID", receiverID)

	require.NoError(t, handler.GetPreferences(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool                     `json:"success"`
		Data    *entity.MatchPreferences `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	require.NotNil(t, envelope.Data)
	assert.Equal(t, float64(15), envelope.Data.MaxDistanceKm)
	assert.Equal(t, []entity.FoodType{entity.FoodTypeVegetarian}, envelope.Data.DietaryPreferences)
}

func TestPreferenceHandler_GetPreferences_MissingUserID(t *testing.T) {
	preferenceUC := mockusecase.NewMockPreferenceUsecase(t)
	handler := NewPreferenceHandler(PreferenceHandlerParams{
		PreferenceUC: preferenceUC,
		Logger:       slog.Default(),
	})

	c, rec := newTestContext(t, http.MethodGet, "/matching/preferences", nil)

	require.NoError(t, handler.GetPreferences(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPreferenceHandler_UpdatePreferences(t *testing.T) {
	receiverID := uuid.New()
	preferenceUC := mockusecase.NewMockPreferenceUsecase(t)
	handler := NewPreferenceHandler(PreferenceHandlerParams{
		PreferenceUC: preferenceUC,
		Logger:       slog.Default(),
	})

	updated := &entity.MatchPreferences{
		DietaryPreferences: []entity.FoodType{entity.FoodTypeVegan},
		MaxDistanceKm:      8,
		AutoMatchEnabled:   true,
	}
	preferenceUC.EXPECT().
		UpdatePreferences(mock.Anything, receiverID, mock.Anything).
		Return(updated, nil).
		Run(func(_ context.Context, _ uuid.UUID, input *usecase.UpdatePreferencesInput) {
			require.NotNil(t, input.MaxDistanceKm)
			assert.Equal(t, float64(8), *input.MaxDistanceKm)
			require.NotNil(t, input.AutoMatchEnabled)
			assert.True(t, *input.AutoMatchEnabled)
			assert.Nil(t, input.MinServings)
		})

	body := []byte(`{"dietary_preferences":["vegan"],"max_distance_km":8,"auto_match_enabled":true}`)
	c, rec := newTestContext(t, http.MethodPut, "/matching/preferences", body)
	c.Set("userID", receiverID)

	require.NoError(t, handler.UpdatePreferences(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool                     `json:"success"`
		Data    *entity.MatchPreferences `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Data)
	assert.True(t, envelope.Data.AutoMatchEnabled)
}

func TestPreferenceHandler_UpdatePreferences_InvalidDistance(t *testing.T) {
	preferenceUC := mockusecase.NewMockPreferenceUsecase(t)
	handler := NewPreferenceHandler(PreferenceHandlerParams{
		PreferenceUC: preferenceUC,
		Logger:       slog.Default(),
	})

	body := []byte(`{"max_distance_km":-3}`)
	c, rec := newTestContext(t, http.MethodPut, "/matching/preferences", body)
	c.Set("userID", uuid.New())

	require.NoError(t, handler.UpdatePreferences(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreferenceHandler_GetMatchingStats(t *testing.T) {
	receiverID := uuid.New()
	preferenceUC := mockusecase.NewMockPreferenceUsecase(t)
	handler := NewPreferenceHandler(PreferenceHandlerParams{
		PreferenceUC: preferenceUC,
		Logger:       slog.Default(),
	})

	matchedAt := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	stats := &entity.MatchingStats{
		TotalMatches:      12,
		SuccessfulClaims:  9,
		LastMatchedAt:     &matchedAt,
		AverageMatchScore: 75,
	}
	preferenceUC.EXPECT().
		GetMatchingStats(mock.Anything, receiverID).
		Return(stats, nil)

	c, rec := newTestContext(t, http.MethodGet, "/matching/stats", nil)
	c.Set("userID", receiverID)

	require.NoError(t, handler.GetMatchingStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool                  `json:"success"`
		Data    *entity.MatchingStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Data)
	assert.Equal(t, 12, envelope.Data.TotalMatches)
	assert.Equal(t, 75, envelope.Data.AverageMatchScore)
}

func TestPreferenceHandler_GetMatchingStats_UnknownReceiver(t *testing.T) {
	receiverID := uuid.New()
	preferenceUC := mockusecase.NewMockPreferenceUsecase(t)
	handler := NewPreferenceHandler(PreferenceHandlerParams{
		PreferenceUC: preferenceUC,
		Logger:       slog.Default(),
	})

	preferenceUC.EXPECT().
		GetMatchingStats(mock.Anything, receiverID).
		Return(nil, domainerrors.ErrInvalidReceiver)

	c, rec := newTestContext(t, http.MethodGet, "/matching/stats", nil)
	c.Set("userID", receiverID)

	require.NoError(t, handler.GetMatchingStats(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_RECEIVER")
}
