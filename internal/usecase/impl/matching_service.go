package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"foodbridge/config"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/errors"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
)

const (
	// fallback defaults applied when MatchingConfig leaves a field unset
	defaultCandidateFetchLimit    = 50
	defaultReceiverSearchRadiusKm = 50.0
	defaultMinMatchPercent        = 50
	defaultMatchLimit             = 10
	defaultNotifyLimit            = 20
	defaultScoreWorkers           = 10

	// notifications at or above this match percentage are marked high priority
	highPriorityPercent = 80
)

type matchingService struct {
	donationRepo repository.DonationRepository
	userRepo     repository.UserRepository
	txManager    repository.TransactionManager
	notifier     service.MatchNotifier
	qrcodeSvc    service.QRCodeService
	scorer       *matchScorer
	logger       *slog.Logger
	now          func() time.Time

	candidateFetchLimit    int
	receiverSearchRadiusKm float64
	minMatchPercent        int
	defaultMatchLimit      int
	defaultNotifyLimit     int
	scoreWorkers           int
}

// NewMatchingService creates a new matching service instance
func NewMatchingService(
	cfg *config.MatchingConfig,
	logger *slog.Logger,
	donationRepo repository.DonationRepository,
	userRepo repository.UserRepository,
	txManager repository.TransactionManager,
	notifier service.MatchNotifier,
	qrcodeSvc service.QRCodeService,
) usecase.MatchingUsecase {
	svc := &matchingService{
		donationRepo:           donationRepo,
		userRepo:               userRepo,
		txManager:              txManager,
		notifier:               notifier,
		qrcodeSvc:              qrcodeSvc,
		scorer:                 newMatchScorer(cfg),
		logger:                 logger,
		now:                    time.Now,
		candidateFetchLimit:    defaultCandidateFetchLimit,
		receiverSearchRadiusKm: defaultReceiverSearchRadiusKm,
		minMatchPercent:        defaultMinMatchPercent,
		defaultMatchLimit:      defaultMatchLimit,
		defaultNotifyLimit:     defaultNotifyLimit,
		scoreWorkers:           defaultScoreWorkers,
	}

	if cfg != nil {
		if cfg.CandidateFetchLimit > 0 {
			svc.candidateFetchLimit = cfg.CandidateFetchLimit
		}
		if cfg.ReceiverSearchRadiusKm > 0 {
			svc.receiverSearchRadiusKm = cfg.ReceiverSearchRadiusKm
		}
		if cfg.MinMatchPercent > 0 {
			svc.minMatchPercent = cfg.MinMatchPercent
		}
		if cfg.DefaultMatchLimit > 0 {
			svc.defaultMatchLimit = cfg.DefaultMatchLimit
		}
		if cfg.DefaultNotifyLimit > 0 {
			svc.defaultNotifyLimit = cfg.DefaultNotifyLimit
		}
		if cfg.ScoreWorkers > 0 {
			svc.scoreWorkers = cfg.ScoreWorkers
		}
	}

	return svc
}

// FindDonationsForReceiver scores available donations near a receiver and
// returns them best-first, capped at limit.
func (s *matchingService) FindDonationsForReceiver(ctx context.Context, receiverID uuid.UUID, limit int) ([]*entity.DonationMatch, error) {
	receiver, err := s.loadReceiver(ctx, receiverID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = s.defaultMatchLimit
	}

	// A receiver without coordinates has nothing nearby by definition.
	if !receiver.HasLocation() {
		return []*entity.DonationMatch{}, nil
	}

	radiusKm := receiver.Preferences.MaxDistanceKm
	if radiusKm <= 0 {
		radiusKm = defaultMaxDistanceKm
	}

	donations, err := s.donationRepo.FindAvailableWithinRadius(ctx, receiver.Location, radiusKm, s.candidateFetchLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query donations within radius")
	}

	scored := make([]*entity.DonationMatch, len(donations))
	s.runScorePool(ctx, len(donations), func(idx int) {
		result := s.scorer.Score(donations[idx], receiver)
		scored[idx] = &entity.DonationMatch{
			Donation:       donations[idx],
			Score:          result.Score,
			Percentage:     result.Percentage,
			Breakdown:      result.Breakdown,
			Recommendation: result.Recommendation,
		}
	})

	// Slots can be left nil when the context is canceled mid-pass.
	matches := make([]*entity.DonationMatch, 0, len(scored))
	for _, match := range scored {
		if match != nil {
			matches = append(matches, match)
		}
	}

	// Sort by raw score, not percentage. Ties among equal percentages are
	// broken by absolute score, which can differ due to rounding.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}

// FindReceiversForDonation scores auto-match receivers near a donation and
// returns those at or above the notification threshold, best-first.
func (s *matchingService) FindReceiversForDonation(ctx context.Context, donationID uuid.UUID, limit int) ([]*entity.ReceiverMatch, error) {
	donation, err := s.loadAvailableDonation(ctx, donationID)
	if err != nil {
		return nil, err
	}

	return s.matchReceivers(ctx, donation, limit)
}

// NotifyMatchingReceivers finds matching receivers for a donation and hands
// each one off to the notification sink as an independent task.
func (s *matchingService) NotifyMatchingReceivers(ctx context.Context, donationID uuid.UUID, limit int) ([]*entity.ReceiverMatch, error) {
	donation, err := s.loadAvailableDonation(ctx, donationID)
	if err != nil {
		return nil, err
	}

	matches, err := s.matchReceivers(ctx, donation, limit)
	if err != nil {
		return nil, err
	}

	// Fire-and-forget per receiver. The ranking response does not block on
	// delivery, and one slow or failing receiver cannot hold up the rest.
	for _, match := range matches {
		if !match.Receiver.Preferences.NotifyOnMatch {
			continue
		}

		go s.dispatchMatch(context.WithoutCancel(ctx), donation, match)
	}

	return matches, nil
}

// matchReceivers runs the donor-seeking scoring pass for a loaded donation.
func (s *matchingService) matchReceivers(ctx context.Context, donation *entity.Donation, limit int) ([]*entity.ReceiverMatch, error) {
	if limit <= 0 {
		limit = s.defaultNotifyLimit
	}

	if !donation.HasPickupLocation() {
		return []*entity.ReceiverMatch{}, nil
	}

	// Coarse fixed-radius pre-filter. Each candidate's own maxDistance
	// preference is applied afterwards through the distance factor.
	receivers, err := s.userRepo.FindAutoMatchReceiversWithinRadius(ctx, donation.Pickup, s.receiverSearchRadiusKm)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query receivers within radius")
	}

	scored := make([]*entity.ReceiverMatch, len(receivers))
	s.runScorePool(ctx, len(receivers), func(idx int) {
		result := s.scorer.Score(donation, receivers[idx])
		scored[idx] = &entity.ReceiverMatch{
			Receiver:       receivers[idx],
			Score:          result.Score,
			Percentage:     result.Percentage,
			Breakdown:      result.Breakdown,
			Recommendation: result.Recommendation,
		}
	})

	// Hard threshold. This pipeline filters, not just ranks. Slots can be
	// left nil when the context is canceled mid-pass.
	matches := make([]*entity.ReceiverMatch, 0, len(scored))
	for _, match := range scored {
		if match != nil && match.Percentage >= s.minMatchPercent {
			matches = append(matches, match)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}

// dispatchMatch persists and delivers one match notification, then records
// the offered match in the receiver's statistics.
func (s *matchingService) dispatchMatch(ctx context.Context, donation *entity.Donation, match *entity.ReceiverMatch) {
	priority := entity.PriorityMedium
	if match.Percentage >= highPriorityPercent {
		priority = entity.PriorityHigh
	}

	notification := &entity.MatchNotification{
		ID:              uuid.New(),
		ReceiverID:      match.Receiver.ID,
		DonationID:      donation.ID,
		Title:           "New donation match",
		Message:         fmt.Sprintf("%s is a %d%% match for your preferences", donation.Title, match.Percentage),
		Priority:        priority,
		MatchPercentage: match.Percentage,
		Recommendation:  match.Recommendation,
		CreatedAt:       s.now(),
	}

	if err := s.notifier.NotifyMatch(ctx, notification); err != nil {
		s.logger.Warn("failed to deliver match notification",
			slog.String("receiver_id", match.Receiver.ID.String()),
			slog.String("donation_id", donation.ID.String()),
			slog.Any("error", err))

		return
	}

	s.RecordMatchOutcome(ctx, match.Receiver.ID, false)
}

// ScoreDonationForReceiver computes the full score breakdown for one
// donation-receiver pair.
func (s *matchingService) ScoreDonationForReceiver(ctx context.Context, donationID, receiverID uuid.UUID) (*entity.MatchResult, error) {
	receiver, err := s.loadReceiver(ctx, receiverID)
	if err != nil {
		return nil, err
	}

	donation, err := s.donationRepo.FindDonationByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return nil, domainerrors.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find donation")
	}

	return s.scorer.Score(donation, receiver), nil
}

// RecordMatchOutcome updates a receiver's rolling match statistics. All
// failures are logged and swallowed so bookkeeping can never fail the
// caller's primary operation.
func (s *matchingService) RecordMatchOutcome(ctx context.Context, receiverID uuid.UUID, successful bool) {
	receiver, err := s.userRepo.FindReceiverByID(ctx, receiverID)
	if err != nil {
		s.logger.Warn("failed to load receiver for match outcome",
			slog.String("receiver_id", receiverID.String()),
			slog.Any("error", err))

		return
	}

	stats := advanceStats(receiver.Stats, successful, s.now())
	if err := s.userRepo.UpdateMatchingStats(ctx, receiverID, stats); err != nil {
		s.logger.Warn("failed to persist matching stats",
			slog.String("receiver_id", receiverID.String()),
			slog.Any("error", err))
	}
}

// GenerateClaimQR produces the QR code a receiver presents at pickup.
func (s *matchingService) GenerateClaimQR(ctx context.Context, donationID, receiverID uuid.UUID) ([]byte, error) {
	donation, err := s.loadAvailableDonation(ctx, donationID)
	if err != nil {
		return nil, err
	}

	receiver, err := s.loadReceiver(ctx, receiverID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeSvc.GenerateClaimQR(donation.ID, receiver.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate claim QR code")
	}

	return png, nil
}

// ConfirmClaim validates a scanned claim QR, marks the donation claimed and
// records the successful outcome in one transaction.
func (s *matchingService) ConfirmClaim(ctx context.Context, qrData string) (*usecase.ClaimResult, error) {
	donationID, receiverID, err := s.qrcodeSvc.ParseClaimQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidClaimQR.WithDetails(err.Error())
	}

	var result *usecase.ClaimResult
	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		donationRepo := txRepoFactory.NewDonationRepository()
		userRepo := txRepoFactory.NewUserRepository()

		donation, err := donationRepo.FindDonationByID(ctx, donationID)
		if err != nil {
			if errors.Is(err, repository.ErrDonationNotFound) {
				return domainerrors.ErrDonationNotFound
			}

			return errors.Wrap(err, "failed to find donation")
		}
		if donation.Status != entity.DonationAvailable {
			return domainerrors.ErrDonationNotAvailable
		}

		receiver, err := userRepo.FindReceiverByID(ctx, receiverID)
		if err != nil {
			if errors.Is(err, repository.ErrReceiverNotFound) {
				return domainerrors.ErrInvalidReceiver
			}

			return errors.Wrap(err, "failed to find receiver")
		}

		if err := donationRepo.MarkClaimed(ctx, donation.ID, receiver.ID); err != nil {
			return errors.Wrap(err, "failed to mark donation claimed")
		}

		stats := advanceStats(receiver.Stats, true, s.now())
		if err := userRepo.UpdateMatchingStats(ctx, receiver.ID, stats); err != nil {
			return errors.Wrap(err, "failed to persist matching stats")
		}

		result = &usecase.ClaimResult{
			DonationID: donation.ID,
			ReceiverID: receiver.ID,
			Title:      donation.Title,
			Servings:   donation.Servings,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *matchingService) loadReceiver(ctx context.Context, id uuid.UUID) (*entity.Receiver, error) {
	receiver, err := s.userRepo.FindReceiverByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReceiverNotFound) {
			return nil, domainerrors.ErrInvalidReceiver
		}

		return nil, errors.Wrap(err, "failed to find receiver")
	}

	if receiver.Role != entity.RoleReceiver {
		return nil, domainerrors.ErrInvalidReceiver
	}

	return receiver, nil
}

func (s *matchingService) loadAvailableDonation(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	donation, err := s.donationRepo.FindDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return nil, domainerrors.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find donation")
	}

	if donation.Status != entity.DonationAvailable {
		return nil, domainerrors.ErrDonationNotAvailable
	}

	return donation, nil
}

// runScorePool scores count candidates on a bounded worker pool. Each worker
// writes to a distinct index, so no synchronization beyond the wait group is
// needed.
func (s *matchingService) runScorePool(ctx context.Context, count int, score func(idx int)) {
	if count == 0 {
		return
	}

	workCh := make(chan int, count)

	workerCount := s.scoreWorkers
	if count < workerCount {
		workerCount = count
	}

	var workerGroup sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for idx := range workCh {
				if ctx.Err() != nil {
					return
				}

				score(idx)
			}
		}()
	}

	for i := 0; i < count; i++ {
		workCh <- i
	}
	close(workCh)

	workerGroup.Wait()
}

// advanceStats returns the receiver's statistics after recording one more
// match outcome.
func advanceStats(stats entity.MatchingStats, successful bool, now time.Time) entity.MatchingStats {
	stats.TotalMatches++
	if successful {
		stats.SuccessfulClaims++
	}
	stats.LastMatchedAt = &now
	stats.AverageMatchScore = int(math.Round(100 * float64(stats.SuccessfulClaims) / float64(stats.TotalMatches)))

	return stats
}
