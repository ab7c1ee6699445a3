// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchingUsecase defines the interface for donation-receiver matching operations.
type MatchingUsecase interface {
	// FindDonationsForReceiver scores available donations near a receiver and
	// returns them best-first. A non-positive limit falls back to the default.
	FindDonationsForReceiver(ctx context.Context, receiverID uuid.UUID, limit int) ([]*entity.DonationMatch, error)

	// FindReceiversForDonation scores auto-match receivers near a donation and
	// returns those at or above the notification threshold, best-first.
	FindReceiversForDonation(ctx context.Context, donationID uuid.UUID, limit int) ([]*entity.ReceiverMatch, error)

	// NotifyMatchingReceivers finds matching receivers for a donation and fans
	// out a notification to each. Returns the notified receivers.
	NotifyMatchingReceivers(ctx context.Context, donationID uuid.UUID, limit int) ([]*entity.ReceiverMatch, error)

	// ScoreDonationForReceiver computes the full score breakdown for one
	// donation-receiver pair.
	ScoreDonationForReceiver(ctx context.Context, donationID, receiverID uuid.UUID) (*entity.MatchResult, error)

	// RecordMatchOutcome updates a receiver's rolling match statistics after
	// an outcome is known. Best-effort bookkeeping: failures are logged and
	// never propagated.
	RecordMatchOutcome(ctx context.Context, receiverID uuid.UUID, successful bool)

	// GenerateClaimQR produces a QR code image a receiver presents to the donor
	// when picking up a donation.
	GenerateClaimQR(ctx context.Context, donationID, receiverID uuid.UUID) ([]byte, error)

	// ConfirmClaim validates a scanned claim QR, marks the donation claimed and
	// updates the receiver's matching statistics in a single transaction.
	ConfirmClaim(ctx context.Context, qrData string) (*ClaimResult, error)
}

// ClaimResult describes the outcome of a confirmed claim.
type ClaimResult struct {
	DonationID uuid.UUID `json:"donation_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Title      string    `json:"title"`
	Servings   int       `json:"servings"`
}
