// Package handler contains the HTTP handlers for the API server.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/delivery/http/middleware"
	"foodbridge/internal/delivery/http/response"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MatchingHandlerParams holds dependencies for MatchingHandler, injected by Fx.
type MatchingHandlerParams struct {
	fx.In

	MatchingUC usecase.MatchingUsecase
	Publisher  service.EventPublisher `optional:"true"`
	Logger     *slog.Logger
}

// MatchingHandler holds dependencies for matching-related handlers
type MatchingHandler struct {
	matchingUC usecase.MatchingUsecase
	publisher  service.EventPublisher // nil when Pub/Sub is not configured
	logger     *slog.Logger
}

// NewMatchingHandler is the constructor for MatchingHandler
func NewMatchingHandler(params MatchingHandlerParams) *MatchingHandler {
	return &MatchingHandler{
		matchingUC: params.MatchingUC,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

// GenerateClaimQRRequest represents the request body for generating a claim QR
type GenerateClaimQRRequest struct {
	DonationID uuid.UUID `json:"donation_id" validate:"required"`
}

// ConfirmClaimRequest represents the request body for confirming a claim
type ConfirmClaimRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// GetSmartMatches returns scored donations near the authenticated receiver,
// best-first.
func (h *MatchingHandler) GetSmartMatches(c echo.Context) error {
	receiverID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit := parseLimit(c.QueryParam("limit"))

	matches, err := h.matchingUC.FindDonationsForReceiver(c.Request().Context(), receiverID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, matches, "Smart matches retrieved successfully")
}

// ScoreDonation returns the full score breakdown for one donation against the
// authenticated receiver.
func (h *MatchingHandler) ScoreDonation(c echo.Context) error {
	receiverID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	donationID, err := uuid.Parse(c.Param("donationId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid donation ID")
	}

	result, err := h.matchingUC.ScoreDonationForReceiver(c.Request().Context(), donationID, receiverID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Donation scored successfully")
}

// NotifyMatchingReceivers fans out match notifications for a freshly posted
// donation. With Pub/Sub configured the event is published and processed by
// the match worker; without it the fan-out runs inline.
func (h *MatchingHandler) NotifyMatchingReceivers(c echo.Context) error {
	donationID, err := uuid.Parse(c.Param("donationId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid donation ID")
	}

	limit := parseLimit(c.QueryParam("limit"))
	ctx := c.Request().Context()

	if h.publisher != nil {
		event := &service.DonationPostedEvent{
			RequestID:  deliverycontext.GetRequestID(c),
			DonationID: donationID.String(),
			Limit:      limit,
		}
		if err := h.publisher.PublishDonationPosted(ctx, event); err != nil {
			h.logger.Error("failed to publish donation-posted event",
				slog.String("donation_id", donationID.String()),
				slog.Any("error", err))

			return response.InternalServerError(c, "PUBLISH_FAILED", "Failed to queue match fan-out")
		}

		return response.Success(c, http.StatusAccepted, map[string]any{
			"donation_id": donationID,
			"queued":      true,
		}, "Match fan-out queued")
	}

	notified, err := h.matchingUC.NotifyMatchingReceivers(ctx, donationID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"donation_id":    donationID,
		"notified_count": len(notified),
		"receivers":      notified,
	}, "Matching receivers notified")
}

// GetReceiversForDonation returns scored receivers above the notification
// threshold for a donation.
func (h *MatchingHandler) GetReceiversForDonation(c echo.Context) error {
	donationID, err := uuid.Parse(c.Param("donationId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid donation ID")
	}

	limit := parseLimit(c.QueryParam("limit"))

	matches, err := h.matchingUC.FindReceiversForDonation(c.Request().Context(), donationID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, matches, "Matching receivers retrieved successfully")
}

// GenerateClaimQR returns the QR code PNG a receiver presents at pickup.
func (h *MatchingHandler) GenerateClaimQR(c echo.Context) error {
	receiverID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req GenerateClaimQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid claim QR input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	png, err := h.matchingUC.GenerateClaimQR(c.Request().Context(), req.DonationID, receiverID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ConfirmClaim validates a scanned claim QR and marks the donation claimed.
func (h *MatchingHandler) ConfirmClaim(c echo.Context) error {
	var req ConfirmClaimRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid claim confirmation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.matchingUC.ConfirmClaim(c.Request().Context(), req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Claim confirmed successfully")
}

// parseLimit parses an optional limit query parameter. Zero means "use the
// configured default"; garbage is treated the same way.
func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}

	return limit
}
