package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateAndParseClaimQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	donationID := uuid.New()
	receiverID := uuid.New()

	png, err := svc.GenerateClaimQR(donationID, receiverID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])

	// The QR payload is the JSON the scanner hands back to ConfirmClaim
	payload, err := json.Marshal(QRCodeData{
		DonationID: donationID.String(),
		ReceiverID: receiverID.String(),
		Type:       "claim",
	})
	require.NoError(t, err)

	parsedDonationID, parsedReceiverID, err := svc.ParseClaimQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, donationID, parsedDonationID)
	assert.Equal(t, receiverID, parsedReceiverID)
}

func TestQRCodeService_ParseClaimQR_InvalidType(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{
		DonationID: uuid.New().String(),
		ReceiverID: uuid.New().String(),
		Type:       "subscription",
	})
	require.NoError(t, err)

	_, _, err = svc.ParseClaimQR(string(payload))
	assert.ErrorContains(t, err, "invalid QR code type")
}

func TestQRCodeService_ParseClaimQR_MalformedPayload(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, _, err := svc.ParseClaimQR("not-json")
	assert.ErrorContains(t, err, "failed to unmarshal")

	payload, marshalErr := json.Marshal(QRCodeData{
		DonationID: "not-a-uuid",
		ReceiverID: uuid.New().String(),
		Type:       "claim",
	})
	require.NoError(t, marshalErr)

	_, _, err = svc.ParseClaimQR(string(payload))
	assert.ErrorContains(t, err, "failed to parse donation ID")
}

func TestNewQRCodeService_DefaultsUnknownCorrectionLevel(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	png, err := svc.GenerateClaimQR(uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
