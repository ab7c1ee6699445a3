// Package handler processes Pub/Sub push messages for the match worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"foodbridge/config"
	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/constants"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// MatchHandler handles Pub/Sub push messages carrying donation-posted events
type MatchHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	matchingUC     usecase.MatchingUsecase
}

// MatchHandlerParams holds dependencies for the MatchHandler
type MatchHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	MatchingUC usecase.MatchingUsecase
}

// NewMatchHandler creates a new Pub/Sub push handler
func NewMatchHandler(params MatchHandlerParams) *MatchHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &MatchHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		matchingUC:     params.MatchingUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *MatchHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse donation-posted event
	var event service.DonationPostedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse donation-posted event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing donation-posted event",
		slog.String("donation_id", event.DonationID),
		slog.Bool("is_urgent", event.IsUrgent),
	)

	// Run the donor-seeking pipeline and dispatch notifications
	if err := h.processDonationPosted(ctx, reqLogger, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process donation-posted event",
			slog.String("donation_id", event.DonationID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Donation-posted event processed successfully",
		slog.String("donation_id", event.DonationID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *MatchHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.DonationPostedEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processDonationPosted runs the donor-seeking pipeline for one event.
func (h *MatchHandler) processDonationPosted(ctx context.Context, logger *slog.Logger, event *service.DonationPostedEvent) error {
	donationID, err := uuid.Parse(event.DonationID)
	if err != nil {
		// A malformed ID will never parse on retry.
		return errors.Wrap(err, "invalid donation ID in event")
	}

	notified, err := h.matchingUC.NotifyMatchingReceivers(ctx, donationID, event.Limit)
	if err != nil {
		// Business errors (donation gone, claimed, expired) are final and a
		// redelivery cannot fix them; infrastructure errors are worth a retry.
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return err
		}

		return newRetryableError(err)
	}

	logger.Info("[Worker] Match fan-out complete",
		slog.String("donation_id", event.DonationID),
		slog.Int("notified_count", len(notified)),
	)

	return nil
}

// verifyPubSubToken validates the Google-signed OIDC token on a push request.
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
