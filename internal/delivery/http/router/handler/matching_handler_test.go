package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodbridge/internal/delivery/http/validator"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/service"
	mockservice "foodbridge/internal/mocks/service"
	mockusecase "foodbridge/internal/mocks/usecase"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target string, body []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestMatchingHandler_GetSmartMatches(t *testing.T) {
	receiverID := uuid.New()
	matchingUC := mockusecase.NewMockMatchingUsecase(t)
	handler := NewMatchingHandler(MatchingHandlerParams{
		MatchingUC: matchingUC,
		Logger:     slog.Default(),
	})

	matches := []*entity.DonationMatch{
		{
			Donation:       &entity.Donation{ID: uuid.New(), Title: "Veggie curry"},
			Score:          128,
			Percentage:     88,
			Recommendation: entity.RecommendationPerfect,
		},
	}
	matchingUC.EXPECT().
		FindDonationsForReceiver(mock.Anything, receiverID, 5).
		Return(matches, nil)

	c, rec := newTestContext(t, http.MethodGet, "/matching/smart-matches?limit=5", nil)
	c.Set("userID", receiverID)

	require.NoError(t, handler.GetSmartMatches(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool                    `json:"success"`
		Data    []*entity.DonationMatch `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, 88, envelope.Data[0].Percentage)
}

func TestMatchingHandler_GetSmartMatches_MissingUserID(t *testing.T) {
	matchingUC := mockusecase.NewMockMatchingUsecase(t)
	handler := NewMatchingHandler(MatchingHandlerParams{
		MatchingUC: matchingUC,
		Logger:     slog.Default(),
	})

	c, rec := newTestContext(t, http.MethodGet, "/matching/smart-matches", nil)

	require.NoError(t, handler.GetSmartMatches(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMatchingHandler_ScoreDonation_InvalidDonationID(t *testing.T) {
	matchingUC := mockusecase.NewMockMatchingUsecase(t)
	handler := NewMatchingHandler(MatchingHandlerParams{
		MatchingUC: matchingUC,
		Logger:     slog.Default(),
	})

	c, rec := newTestContext(t, http.MethodGet, "/matching/score/abc", nil)
	c.Set("userID", uuid.New())
	c.SetParamNames("donationId")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.ScoreDonation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchingHandler_ScoreDonation_NotFound(t *testing.T) {
	receiverID := uuid.New()
	donationID := uuid.New()

	matchingUC := mockusecase.NewMockMatchingUsecase(t)
	handler := NewMatchingHandler(MatchingHandlerParams{
		MatchingUC: matchingUC,
		Logger:     slog.Default(),
	})

	matchingUC.EXPECT().
		ScoreDonationForReceiver(mock.Anything, donationID, receiverID).
		Return(nil, domainerrors.ErrDonationNotFound)

	c, rec := newTestContext(t, http.MethodGet, "/matching/score/"+donationID.String(), nil)
	c.Set("userID", receiverID)
	c.SetParamNames("donationId")
	c.SetParamValues(donationID.String())

	require.NoError(t, handler.ScoreDonation(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "DONATION_NOT_FOUND")
}

func TestMatchingHandler_NotifyMatchingReceivers_InlineWithoutPublisher(t *testing.T) {
	donationID := uuid.New()

	matchingUC := mockusecase.NewMockMatchingUsecase(t)
	handler := NewMatchingHandler(MatchingHandlerParams{
		MatchingUC: matchingUC,
		Logger:     slog.Default(),
	})

	notified := []*entity.ReceiverMatch{
		{Receiver: &entity.Receiver{ID: uuid.New()}, Percentage: 72, Recommendation: entity.RecommendationExcellent},
		{Receiver: &entity.Receiver{ID: uuid.New()}, Percentage: 55, Recommendation: entity.RecommendationGood},
	}
	matchingUC.EXPECT().
		NotifyMatchingReceivers(mock.Anything, donationID, 0).
		Return(notified, nil)

	c, rec := newTestContext(t, http.MethodPost, "/matching/notify/"+donationID.String(), nil)
	c.SetParamNames("donationId")
	c.SetParamValues(donationID.String())

	require.NoError(t, handler.NotifyMatchingReceivers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"notified_count":2`)
}

func TestMatchingHandler_NotifyMatchingReceivers_PublishesWhenConfigured(t *testing.T) {
	donationID := uuid.New()

	matchingUC := mockusecase.NewMockMatchingUsecase(t)
	publisher := mockservice.NewMockEventPublisher(t)
	handler := NewMatchingHandler(MatchingHandlerParams{
		MatchingUC: matchingUC,
		Publisher:  publisher,
		Logger:     slog.Default(),
	})

	publisher.EXPECT().
		PublishDonationPosted(mock.Anything, mock.AnythingOfType("*service.DonationPostedEvent")).
		Run(func(_ context.Context, event *service.DonationPostedEvent) {
			assert.Equal(t, donationID.String(), event.DonationID)
			assert.Equal(t, 10, event.Limit)
		}).
		Return(nil)

	c, rec := newTestContext(t, http.MethodPost, "/matching/notify/"+donationID.String()+"?limit=10", nil)
	c.SetParamNames("donationId")
	c.SetParamValues(donationID.String())

	require.NoError(t, handler.NotifyMatchingReceivers(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"queued":true`)
}

func TestMatchingHandler_GenerateClaimQR(t *testing.T) {
	receiverID := uuid.New()
	donationID := uuid.New()

	matchingUC := mockusecase.NewMockMatchingUsecase(t)
	handler := NewMatchingHandler(MatchingHandlerParams{
		MatchingUC: matchingUC,
		Logger:     slog.Default(),
	})

	png := []byte{0x89, 'P', 'N', 'G'}
	matchingUC.EXPECT().
		GenerateClaimQR(mock.Anything, donationID, receiverID).
		Return(png, nil)

	body, err := json.Marshal(GenerateClaimQRRequest{DonationID: donationID})
	require.NoError(t, err)

	c, rec := newTestContext(t, http.MethodPost, "/matching/claims/qr", body)
	c.Set("userID", receiverID)

	require.NoError(t, handler.GenerateClaimQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestMatchingHandler_ConfirmClaim(t *testing.T) {
	donationID := uuid.New()
	receiverID := uuid.New()

	matchingUC := mockusecase.NewMockMatchingUsecase(t)
	handler := NewMatchingHandler(MatchingHandlerParams{
		MatchingUC: matchingUC,
		Logger:     slog.Default(),
	})

	matchingUC.EXPECT().
		ConfirmClaim(mock.Anything, "qr-payload").
		Return(&usecase.ClaimResult{
			DonationID: donationID,
			ReceiverID: receiverID,
			Title:      "Veggie curry",
			Servings:   10,
		}, nil)

	body, err := json.Marshal(ConfirmClaimRequest{QRData: "qr-payload"})
	require.NoError(t, err)

	c, rec := newTestContext(t, http.MethodPost, "/matching/claims/confirm", body)

	require.NoError(t, handler.ConfirmClaim(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), donationID.String())
}

func TestMatchingHandler_ConfirmClaim_MissingQRData(t *testing.T) {
	matchingUC := mockusecase.NewMockMatchingUsecase(t)
	handler := NewMatchingHandler(MatchingHandlerParams{
		MatchingUC: matchingUC,
		Logger:     slog.Default(),
	})

	c, rec := newTestContext(t, http.MethodPost, "/matching/claims/confirm", []byte(`{}`))

	require.NoError(t, handler.ConfirmClaim(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
