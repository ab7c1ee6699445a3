package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for claim QR code generation and parsing.
type QRCodeService interface {
	// GenerateClaimQR generates a QR code PNG a receiver presents at pickup
	// to confirm a claimed donation.
	GenerateClaimQR(donationID, receiverID uuid.UUID) ([]byte, error)

	// ParseClaimQR parses scanned claim QR data back into its donation and
	// receiver IDs.
	ParseClaimQR(qrData string) (donationID, receiverID uuid.UUID, err error)
}
