// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodbridge/internal/delivery/http/middleware"
	"foodbridge/internal/delivery/http/router/handler"
	"foodbridge/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MatchingHandler     *handler.MatchingHandler
	PreferenceHandler   *handler.PreferenceHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	matchingHandler     *handler.MatchingHandler
	preferenceHandler   *handler.PreferenceHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		matchingHandler:     params.MatchingHandler,
		preferenceHandler:   params.PreferenceHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	matchingGroup := e.Group("/matching")
	matchingGroup.Use(r.authMiddleware.Authenticate)

	// Receiver-facing matching routes
	receiverGroup := matchingGroup.Group("")
	receiverGroup.Use(r.authMiddleware.RequireRole(entity.RoleReceiver.String()))
	{
		receiverGroup.GET("/smart-matches", r.matchingHandler.GetSmartMatches)
		receiverGroup.GET("/score/:donationId", r.matchingHandler.ScoreDonation)
		receiverGroup.GET("/preferences", r.preferenceHandler.GetPreferences)
		receiverGroup.PUT("/preferences", r.preferenceHandler.UpdatePreferences)
		receiverGroup.GET("/stats", r.preferenceHandler.GetMatchingStats)
		receiverGroup.GET("/notifications", r.notificationHandler.GetNotificationHistory)
		receiverGroup.POST("/claims/qr", r.matchingHandler.GenerateClaimQR)
	}

	// Donor-facing matching routes
	donorGroup := matchingGroup.Group("")
	donorGroup.Use(r.authMiddleware.RequireRole(entity.RoleDonor.String()))
	{
		donorGroup.GET("/receivers/:donationId", r.matchingHandler.GetReceiversForDonation)
		donorGroup.POST("/notify/:donationId", r.matchingHandler.NotifyMatchingReceivers)
		donorGroup.POST("/claims/confirm", r.matchingHandler.ConfirmClaim)
	}
}
