package handler

import (
	"log/slog"
	"net/http"

	"foodbridge/internal/delivery/http/middleware"
	"foodbridge/internal/delivery/http/response"
	"foodbridge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PreferenceHandlerParams holds dependencies for PreferenceHandler, injected by Fx.
type PreferenceHandlerParams struct {
	fx.In

	PreferenceUC usecase.PreferenceUsecase
	Logger       *slog.Logger
}

// PreferenceHandler holds dependencies for preference-related handlers
type PreferenceHandler struct {
	preferenceUC usecase.PreferenceUsecase
	logger       *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler
func NewPreferenceHandler(params PreferenceHandlerParams) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUC: params.PreferenceUC,
		logger:       params.Logger,
	}
}

// GetPreferences returns the authenticated receiver's matching preferences.
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	receiverID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	prefs, err := h.preferenceUC.GetPreferences(c.Request().Context(), receiverID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs, "Preferences retrieved successfully")
}

// UpdatePreferences applies a partial preference update. Omitted fields keep
// their stored values.
func (h *PreferenceHandler) UpdatePreferences(c echo.Context) error {
	receiverID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.UpdatePreferencesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	prefs, err := h.preferenceUC.UpdatePreferences(c.Request().Context(), receiverID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs, "Preferences updated successfully")
}

// GetMatchingStats returns the authenticated receiver's rolling match
// statistics.
func (h *PreferenceHandler) GetMatchingStats(c echo.Context) error {
	receiverID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	stats, err := h.preferenceUC.GetMatchingStats(c.Request().Context(), receiverID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Matching stats retrieved successfully")
}
