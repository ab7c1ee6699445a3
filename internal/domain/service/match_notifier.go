// Package service defines interfaces for infrastructure capabilities the
// use case layer depends on.
package service

import (
	"context"

	"foodbridge/internal/domain/entity"
)

// MatchNotifier is the notification-dispatch sink for the donor-seeking
// pipeline. Delivery is best-effort: a failure for one receiver must never
// affect delivery to others, and callers do not rely on confirmation.
type MatchNotifier interface {
	// NotifyMatch delivers one match notification to a single receiver,
	// persisting the in-app record and pushing to the receiver's registered
	// devices.
	NotifyMatch(ctx context.Context, notification *entity.MatchNotification) error
}
