package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	mockRepo "foodbridge/internal/mocks/repository"
	mockSvc "foodbridge/internal/mocks/service"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// matchingServiceFixtures holds all test dependencies for matching service tests.
type matchingServiceFixtures struct {
	service      usecase.MatchingUsecase
	impl         *matchingService
	donationRepo *mockRepo.MockDonationRepository
	userRepo     *mockRepo.MockUserRepository
	txManager    *mockRepo.MockTransactionManager
	notifier     *mockSvc.MockMatchNotifier
	qrcodeSvc    *mockSvc.MockQRCodeService
}

func createTestMatchingService(t *testing.T) matchingServiceFixtures {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	notifier := mockSvc.NewMockMatchNotifier(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewMatchingService(nil, logger, donationRepo, userRepo, txManager, notifier, qrcodeSvc)
	impl := service.(*matchingService)
	impl.now = func() time.Time { return fixedNow }
	impl.scorer.now = impl.now

	return matchingServiceFixtures{
		service:      service,
		impl:         impl,
		donationRepo: donationRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		notifier:     notifier,
		qrcodeSvc:    qrcodeSvc,
	}
}

func availableDonation(rating float64) *entity.Donation {
	donation := testDonation()
	donation.ID = uuid.New()
	donation.DonorID = uuid.New()
	donation.DonorRating = rating
	donation.ExpiresAt = fixedNow.Add(48 * time.Hour)

	return donation
}

func neutralReceiver() *entity.Receiver {
	receiver := testReceiver()
	receiver.ID = uuid.New()
	receiver.Preferences = entity.MatchPreferences{
		MaxDistanceKm:    10,
		NotifyOnMatch:    true,
		AutoMatchEnabled: true,
	}

	return receiver
}

func TestMatchingService_FindDonationsForReceiver_SortsAndLimits(t *testing.T) {
	fx := createTestMatchingService(t)

	ctx := context.Background()
	receiver := neutralReceiver()

	// Identical except for donor rating, so scores differ only by the
	// donor-rating factor.
	low := availableDonation(1)
	mid := availableDonation(3)
	top := availableDonation(5)

	fx.userRepo.EXPECT().FindReceiverByID(ctx, receiver.ID).Return(receiver, nil)
	fx.donationRepo.EXPECT().
		FindAvailableWithinRadius(ctx, receiver.Location, 10.0, defaultCandidateFetchLimit).
		Return([]*entity.Donation{low, mid, top}, nil)

	matches, err := fx.service.FindDonationsForReceiver(ctx, receiver.ID, 2)

	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, top.ID, matches[0].Donation.ID)
	assert.Equal(t, mid.ID, matches[1].Donation.ID)
	assert.GreaterOrEqual(t, matches[0].Score, matches[1].Score)
}

func TestMatchingService_FindDonationsForReceiver_InvalidReceiver(t *testing.T) {
	fx := createTestMatchingService(t)

	ctx := context.Background()
	receiverID := uuid.New()

	fx.userRepo.EXPECT().FindReceiverByID(ctx, receiverID).Return(nil, repository.ErrReceiverNotFound)

	matches, err := fx.service.FindDonationsForReceiver(ctx, receiverID, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReceiver)
	assert.Nil(t, matches)
}

func TestMatchingService_FindDonationsForReceiver_WrongRole(t *testing.T) {
	fx := createTestMatchingService(t)

	ctx := context.Background()
	receiver := neutralReceiver()
	receiver.Role = entity.RoleDonor

	fx.userRepo.EXPECT().FindReceiverByID(ctx, receiver.ID).Return(receiver, nil)

	_, err := fx.service.FindDonationsForReceiver(ctx, receiver.ID, 10)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidReceiver)
}

func TestMatchingService_FindDonationsForReceiver_NoLocation(t *testing.T) {
	fx := createTestMatchingService(t)

	ctx := context.Background()
	receiver := neutralReceiver()
	receiver.Location = orb.Point{}

	fx.userRepo.EXPECT().FindReceiverByID(ctx, receiver.ID).Return(receiver, nil)

	matches, err := fx.service.FindDonationsForReceiver(ctx, receiver.ID, 10)

	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMatchingService_FindReceiversForDonation_FiltersBelowThreshold(t *testing.T) {
	fx := createTestMatchingService(t)

	ctx := context.Background()
	donation := availableDonation(5)
	donation.ExpiresAt = fixedNow.Add(3 * time.Hour)

	strong := testReceiver()
	strong.ID = uuid.New()
	strong.Preferences.AutoMatchEnabled = true

	// Well outside its own 10 km preference, so the distance factor awards
	// nothing and the percentage lands below the threshold.
	weak := testReceiver()
	weak.ID = uuid.New()
	weak.Preferences.AutoMatchEnabled = true
	weak.Preferences.DietaryPreferences = []entity.FoodType{entity.FoodTypeVegan}
	weak.Preferences.PreferredCategories = []entity.FoodCategory{entity.CategoryBakery}
	weak.Preferences.PreferredPickupTimes = []entity.PickupWindow{entity.WindowEvening}
	weak.Location = orb.Point{121.9, 25.0330}

	fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)
	fx.userRepo.EXPECT().
		FindAutoMatchReceiversWithinRadius(ctx, donation.Pickup, defaultReceiverSearchRadiusKm).
		Return([]*entity.Receiver{weak, strong}, nil)

	matches, err := fx.service.FindReceiversForDonation(ctx, donation.ID, 20)

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, strong.ID, matches[0].Receiver.ID)
	assert.GreaterOrEqual(t, matches[0].Percentage, defaultMinMatchPercent)
}

func TestMatchingService_FindReceiversForDonation_DonationNotFound(t *testing.T) {
	fx := createTestMatchingService(t)

	ctx := context.Background()
	donationID := uuid.New()

	fx.donationRepo.EXPECT().FindDonationByID(ctx, donationID).Return(nil, repository.ErrDonationNotFound)

	_, err := fx.service.FindReceiversForDonation(ctx, donationID, 20)

	assert.ErrorIs(t, err, domainerrors.ErrDonationNotFound)
}

func TestMatchingService_FindReceiversForDonation_NotAvailable(t *testing.T) {
	fx := createTestMatchingService(t)

	ctx := context.Background()
	donation := availableDonation(5)
	donation.Status = entity.DonationClaimed

	fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)

	_, err := fx.service.FindReceiversForDonation(ctx, donation.ID, 20)

	assert.ErrorIs(t, err, domainerrors.ErrDonationNotAvailable)
}

func TestMatchingService_DispatchMatch_Success(t *testing.T) {
	fx := createTestMatchingService(t)

	ctx := context.Background()
	donation := availableDonation(5)
	receiver := neutralReceiver()
	match := &entity.ReceiverMatch{
		Receiver:       receiver,
		Score:          123,
		Percentage:     85,
		Recommendation: entity.RecommendationPerfect,
	}

	fx.notifier.EXPECT().
		NotifyMatch(ctx, mock.AnythingOfType("*entity.MatchNotification")).
		Run(func(ctx context.Context, notification *entity.MatchNotification) {
			assert.Equal(t, receiver.ID, notification.ReceiverID)
			assert.Equal(t, donation.ID, notification.DonationID)
			assert.Equal(t, 85, notification.MatchPercentage)
			assert.Equal(t, entity.PriorityHigh, notification.Priority)
			assert.Contains(t, notification.Message, donation.Title)
		}).
		Return(nil)

	fx.userRepo.EXPECT().FindReceiverByID(ctx, receiver.ID).Return(receiver, nil)
	fx.userRepo.EXPECT().
		UpdateMatchingStats(ctx, receiver.ID, entity.MatchingStats{
			TotalMatches:      1,
			SuccessfulClaims:  0,
			LastMatchedAt:     &fixedNow,
			AverageMatchScore: 0,
		}).
		Return(nil)

	fx.impl.dispatchMatch(ctx, donation, match)
}

func TestMatchingService_DispatchMatch_DeliveryFailureSkipsStats(t *testing.T) {
	fx := createTestMatchingService(t)

	ctx := context.Background()
	donation := availableDonation(5)
	match := &entity.ReceiverMatch{
		Receiver:       neutralReceiver(),
		Score:          90,
		Percentage:     62,
		Recommendation: entity.RecommendationGood,
	}

	fx.notifier.EXPECT().
		NotifyMatch(ctx, mock.AnythingOfType("*entity.MatchNotification")).
		Run(func(ctx context.Context, notification *entity.MatchNotification) {
			assert.Equal(t, entity.PriorityMedium, notification.Priority)
		}).
		Return(errors.New("push gateway unavailable"))

	// No stats expectations: a failed delivery must not count as a match.
	fx.impl.dispatchMatch(ctx, donation, match)
}

func TestMatchingService_RecordMatchOutcome_Scenario(t *testing.T) {
	fx := createTestMatchingService(t)

	ctx := context.Background()
	receiver := neutralReceiver()

	fx.userRepo.EXPECT().FindReceiverByID(ctx, receiver.ID).Return(receiver, nil)
	fx.userRepo.EXPECT().
		UpdateMatchingStats(ctx, receiver.ID, mock.AnythingOfType("entity.MatchingStats")).
		Run(func(ctx context.Context, id uuid.UUID, stats entity.MatchingStats) {
			receiver.Stats = stats
		}).
		Return(nil)

	fx.service.RecordMatchOutcome(ctx, receiver.ID, false)
	fx.service.RecordMatchOutcome(ctx, receiver.ID, true)

	assert.Equal(t, 2, receiver.Stats.TotalMatches)
	assert.Equal(t, 1, receiver.Stats.SuccessfulClaims)
	assert.Equal(t, 50, receiver.Stats.AverageMatchScore)
	require.NotNil(t, receiver.Stats.LastMatchedAt)
	assert.Equal(t, fixedNow, *receiver.Stats.LastMatchedAt)
}

func TestMatchingService_RecordMatchOutcome_SwallowsErrors(t *testing.T) {
	fx := createTestMatchingService(t)

	ctx := context.Background()
	receiverID := uuid.New()

	fx.userRepo.EXPECT().FindReceiverByID(ctx, receiverID).Return(nil, repository.ErrReceiverNotFound)

	// Must not panic or surface the error.
	fx.service.RecordMatchOutcome(ctx, receiverID, true)
}

func TestMatchingService_ScoreDonationForReceiver(t *testing.T) {
	fx := createTestMatchingService(t)

	ctx := context.Background()
	donation := availableDonation(5)
	donation.ExpiresAt = fixedNow.Add(3 * time.Hour)
	receiver := testReceiver()
	receiver.ID = uuid.New()

	fx.userRepo.EXPECT().FindReceiverByID(ctx, receiver.ID).Return(receiver, nil)
	fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)

	result, err := fx.service.ScoreDonationForReceiver(ctx, donation.ID, receiver.ID)

	require.NoError(t, err)
	assert.Equal(t, 128, result.Score)
	assert.Equal(t, 145, result.MaxScore)
	assert.Equal(t, 88, result.Percentage)
	assert.Equal(t, entity.RecommendationPerfect, result.Recommendation)
}

func TestMatchingService_GenerateClaimQR(t *testing.T) {
	fx := createTestMatchingService(t)

	ctx := context.Background()
	donation := availableDonation(5)
	receiver := neutralReceiver()
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.donationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)
	fx.userRepo.EXPECT().FindReceiverByID(ctx, receiver.ID).Return(receiver, nil)
	fx.qrcodeSvc.EXPECT().GenerateClaimQR(donation.ID, receiver.ID).Return(png, nil)

	got, err := fx.service.GenerateClaimQR(ctx, donation.ID, receiver.ID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestMatchingService_ConfirmClaim_Success(t *testing.T) {
	fx := createTestMatchingService(t)

	ctx := context.Background()
	donation := availableDonation(5)
	receiver := neutralReceiver()
	receiver.Stats = entity.MatchingStats{TotalMatches: 1}

	fx.qrcodeSvc.EXPECT().ParseClaimQR("qr-payload").Return(donation.ID, receiver.ID, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txDonationRepo := mockRepo.NewMockDonationRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewDonationRepository().Return(txDonationRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
			txDonationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)
			txUserRepo.EXPECT().FindReceiverByID(ctx, receiver.ID).Return(receiver, nil)
			txDonationRepo.EXPECT().MarkClaimed(ctx, donation.ID, receiver.ID).Return(nil)
			txUserRepo.EXPECT().
				UpdateMatchingStats(ctx, receiver.ID, entity.MatchingStats{
					TotalMatches:      2,
					SuccessfulClaims:  1,
					LastMatchedAt:     &fixedNow,
					AverageMatchScore: 50,
				}).
				Return(nil)

			return fn(mockFactory)
		})

	result, err := fx.service.ConfirmClaim(ctx, "qr-payload")

	require.NoError(t, err)
	assert.Equal(t, donation.ID, result.DonationID)
	assert.Equal(t, receiver.ID, result.ReceiverID)
	assert.Equal(t, donation.Title, result.Title)
	assert.Equal(t, donation.Servings, result.Servings)
}

func TestMatchingService_ConfirmClaim_InvalidQR(t *testing.T) {
	fx := createTestMatchingService(t)

	ctx := context.Background()

	fx.qrcodeSvc.EXPECT().
		ParseClaimQR("garbage").
		Return(uuid.Nil, uuid.Nil, errors.New("invalid payload"))

	_, err := fx.service.ConfirmClaim(ctx, "garbage")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidClaimQR)
}

func TestMatchingService_ConfirmClaim_NotAvailable(t *testing.T) {
	fx := createTestMatchingService(t)

	ctx := context.Background()
	donation := availableDonation(5)
	donation.Status = entity.DonationCompleted
	receiverID := uuid.New()

	fx.qrcodeSvc.EXPECT().ParseClaimQR("qr-payload").Return(donation.ID, receiverID, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txDonationRepo := mockRepo.NewMockDonationRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewDonationRepository().Return(txDonationRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
			txDonationRepo.EXPECT().FindDonationByID(ctx, donation.ID).Return(donation, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.ConfirmClaim(ctx, "qr-payload")

	assert.ErrorIs(t, err, domainerrors.ErrDonationNotAvailable)
}
