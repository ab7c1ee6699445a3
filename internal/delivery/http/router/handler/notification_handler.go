package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"foodbridge/internal/delivery/http/middleware"
	"foodbridge/internal/delivery/http/response"
	"foodbridge/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultNotificationPageSize = 20
	maxNotificationPageSize     = 100
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NotificationHandler serves a receiver's in-app match-notification history.
type NotificationHandler struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

// GetNotificationHistory returns the authenticated receiver's match
// notifications, newest first, with limit/offset pagination.
func (h *NotificationHandler) GetNotificationHistory(c echo.Context) error {
	receiverID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit := defaultNotificationPageSize
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = min(parsed, maxNotificationPageSize)
		}
	}

	offset := 0
	if raw := c.QueryParam("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	notifications, err := h.notificationRepo.FindNotificationsByReceiver(c.Request().Context(), receiverID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}
