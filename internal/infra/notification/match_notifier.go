package notification

import (
	"context"
	"fmt"
	"log/slog"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"

	"github.com/google/uuid"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

type matchNotifier struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	pushSvc          service.PushService // nil when push delivery is not configured
	logger           *slog.Logger
}

// NewMatchNotifier creates the notification sink the donor-seeking pipeline
// dispatches through. The push service may be nil; the in-app record is
// persisted either way.
func NewMatchNotifier(
	notificationRepo repository.NotificationRepository,
	deviceRepo repository.DeviceRepository,
	pushSvc service.PushService,
	logger *slog.Logger,
) service.MatchNotifier {
	return &matchNotifier{
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		pushSvc:          pushSvc,
		logger:           logger,
	}
}

// NotifyMatch persists the in-app notification record and pushes it to the
// receiver's registered devices.
func (n *matchNotifier) NotifyMatch(ctx context.Context, notification *entity.MatchNotification) error {
	if err := n.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to persist match notification: %w", err)
	}

	// Push delivery is optional; without Firebase the in-app record is the
	// whole delivery.
	if n.pushSvc == nil {
		return nil
	}

	devices, err := n.deviceRepo.FindDevicesForUsers(ctx, []uuid.UUID{notification.ReceiverID})
	if err != nil {
		return fmt.Errorf("failed to fetch receiver devices: %w", err)
	}

	if len(devices) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(devices))
	deviceMap := make(map[string]*entity.UserDevice) // token -> device mapping
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceMap[device.FCMToken] = device
	}

	pushData := map[string]string{
		"notification_id":  notification.ID.String(),
		"donation_id":      notification.DonationID.String(),
		"match_percentage": fmt.Sprintf("%d", notification.MatchPercentage),
		"recommendation":   string(notification.Recommendation),
		"priority":         string(notification.Priority),
	}

	var invalidTokens []string

	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := i + firebaseBatchSize
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[i:end]

		successCount, failureCount, batchInvalidTokens, err := n.pushSvc.SendBatchNotification(
			ctx,
			batch,
			notification.Title,
			notification.Message,
			pushData,
		)
		if err != nil {
			// Log error but continue with other batches
			n.logger.Warn("push batch failed",
				slog.String("receiver_id", notification.ReceiverID.String()),
				slog.Any("error", err))

			continue
		}

		if failureCount > 0 {
			n.logger.Debug("push batch partially delivered",
				slog.String("receiver_id", notification.ReceiverID.String()),
				slog.Int("sent", successCount),
				slog.Int("failed", failureCount))
		}

		invalidTokens = append(invalidTokens, batchInvalidTokens...)
	}

	// Handle invalid tokens - soft delete devices
	for _, token := range invalidTokens {
		device, ok := deviceMap[token]
		if !ok {
			continue
		}
		if err := n.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
			n.logger.Warn("failed to retire invalid device",
				slog.String("device_id", device.ID.String()),
				slog.Any("error", err))
		}
	}

	return nil
}
