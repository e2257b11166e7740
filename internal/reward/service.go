// Package reward composes and dispatches bloom rewards and badge unlocks.
package reward

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sharonsgarden/garden-api/internal/concurrency"
	"github.com/sharonsgarden/garden-api/internal/dayclock"
	"github.com/sharonsgarden/garden-api/internal/domain"
	"github.com/sharonsgarden/garden-api/internal/event"
	"github.com/sharonsgarden/garden-api/internal/logger"
	"github.com/sharonsgarden/garden-api/internal/metrics"
	"github.com/sharonsgarden/garden-api/internal/repository"
)

// Service composes the reward for a bloomed seed and evaluates badge rules.
// Dispatch is exactly-once per seed: the reward row is keyed by seed id, and a
// repeat call returns the stored outcome instead of drawing again.
type Service interface {
	// PickFlower draws a flower from the kind's pool by rarity weight.
	// Called before the bloom is committed so the chosen species is part of
	// the same transaction that flips the seed.
	PickFlower(kind domain.SeedKind) domain.FlowerSpecies

	// Dispatch persists the reward outcome for a freshly bloomed seed,
	// publishes the bloom event and evaluates the owner's bloom badges
	Dispatch(ctx context.Context, seed *domain.Seed, actorID string, flower domain.FlowerSpecies) (*domain.RewardOutcome, error)

	// GetBySeed retrieves the stored reward for a bloomed seed
	GetBySeed(ctx context.Context, seedID string) (*domain.RewardOutcome, error)

	// EvaluateWateringStreak unlocks the streak badge once the actor has
	// watered on each of the trailing StreakDays days
	EvaluateWateringStreak(ctx context.Context, actorID string) error

	// ListBadges returns the user's badge unlocks, oldest first
	ListBadges(ctx context.Context, userID string) ([]domain.BadgeUnlock, error)
}

// bloomBadgeThresholds maps cumulative bloom counts to the badge they unlock
var bloomBadgeThresholds = map[int]string{
	1:  BadgeFirstBloom,
	5:  BadgeGreenThumb,
	10: BadgeGardenMaster,
	25: BadgeLegendaryGardener,
}

type service struct {
	rewardRepo repository.Reward
	badgeRepo  repository.Badge
	seedRepo   repository.Seed
	ledgerRepo repository.Ledger
	publisher  *event.ResilientPublisher
	clock      dayclock.Clock

	// dispatchLocks serializes concurrent Dispatch calls per seed so only
	// one draw happens; the unique reward row is the durable backstop
	dispatchLocks *concurrency.LockManager

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService creates a new reward service. A nil rng gets a time-seeded one;
// tests pass a fixed seed for deterministic draws.
func NewService(
	rewardRepo repository.Reward,
	badgeRepo repository.Badge,
	seedRepo repository.Seed,
	ledgerRepo repository.Ledger,
	publisher *event.ResilientPublisher,
	clock dayclock.Clock,
	rng *rand.Rand,
) Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &service{
		rewardRepo:    rewardRepo,
		badgeRepo:     badgeRepo,
		seedRepo:      seedRepo,
		ledgerRepo:    ledgerRepo,
		publisher:     publisher,
		clock:         clock,
		dispatchLocks: concurrency.NewLockManager(),
		rng:           rng,
	}
}

func (s *service) roll(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(n)
}

func (s *service) PickFlower(kind domain.SeedKind) domain.FlowerSpecies {
	rarity := pickRarity(s.roll(WeightTotal))
	pool := PoolFor(kind)
	for _, flower := range pool {
		if flower.Rarity == rarity {
			return flower
		}
	}
	// Pools carry every rarity; reaching here means a catalog bug, so fall
	// back to the first entry rather than panic mid-watering.
	return pool[0]
}

func (s *service) Dispatch(ctx context.Context, seed *domain.Seed, actorID string, flower domain.FlowerSpecies) (*domain.RewardOutcome, error) {
	log := logger.FromContext(ctx)

	lock := s.dispatchLocks.GetLock(seed.ID)
	lock.Lock()
	defer lock.Unlock()

	if existing, err := s.rewardRepo.GetRewardBySeed(ctx, seed.ID); err == nil {
		log.Debug(LogMsgRewardAlreadySet, "seedID", seed.ID)
		return existing, nil
	} else if !errors.Is(err, domain.ErrRewardNotFound) {
		return nil, fmt.Errorf(ErrMsgComposeFailed, err)
	}

	outcome := s.compose(seed, flower)
	if err := s.rewardRepo.InsertReward(ctx, outcome); err != nil {
		return nil, fmt.Errorf(ErrMsgPersistFailed, err)
	}

	metrics.BloomsTotal.WithLabelValues(string(seed.Kind)).Inc()
	s.publisher.PublishWithRetry(ctx, event.NewSeedBloomedEvent(
		seed.ID, seed.OwnerID, string(seed.Kind),
		flower.Name, string(flower.Rarity),
		string(outcome.Kind), outcome.ID, actorID,
	))

	log.Info(LogMsgRewardDispatched,
		"seedID", seed.ID, "ownerID", seed.OwnerID,
		"flower", flower.Name, "rarity", flower.Rarity, "rewardKind", outcome.Kind)

	if err := s.evaluateBloomBadges(ctx, seed.OwnerID); err != nil {
		// Badges ride along with the bloom; their failure must not undo it
		log.Error("Failed to evaluate bloom badges", "ownerID", seed.OwnerID, "error", err)
	}

	return outcome, nil
}

// compose builds the full outcome: flower, variant draw and message
func (s *service) compose(seed *domain.Seed, flower domain.FlowerSpecies) *domain.RewardOutcome {
	outcome := &domain.RewardOutcome{
		ID:        uuid.NewString(),
		SeedID:    seed.ID,
		UserID:    seed.OwnerID,
		Flower:    flower,
		Kind:      pickVariant(s.roll(VariantWeightTotal)),
		Message:   fmt.Sprintf(BloomMessageFormat, seed.Kind, flower.Rarity, flower.DisplayName, flower.Emoji),
		CreatedAt: s.clock.Now(),
	}

	switch outcome.Kind {
	case domain.RewardKindQuote:
		q := quotes[s.roll(len(quotes))]
		outcome.Quote = &q
	case domain.RewardKindSticker:
		outcome.Sticker = &domain.StickerReward{StickerID: stickerIDs[s.roll(len(stickerIDs))]}
	case domain.RewardKindAudio:
		outcome.Audio = &domain.AudioReward{TrackID: trackIDs[s.roll(len(trackIDs))]}
	case domain.RewardKindGift:
		outcome.Gift = &domain.GiftReward{Link: giftLinks[s.roll(len(giftLinks))]}
	case domain.RewardKindBadge:
		outcome.Badge = &domain.BadgeReward{BadgeID: "bloom_" + string(seed.Kind)}
	}

	return outcome
}

func (s *service) GetBySeed(ctx context.Context, seedID string) (*domain.RewardOutcome, error) {
	return s.rewardRepo.GetRewardBySeed(ctx, seedID)
}

func (s *service) ListBadges(ctx context.Context, userID string) ([]domain.BadgeUnlock, error) {
	return s.badgeRepo.ListBadgeUnlocks(ctx, userID)
}

// evaluateBloomBadges unlocks every threshold badge the owner's bloom count
// has reached. Evaluating all thresholds, not just the exact count, heals
// missed unlocks from earlier failures.
func (s *service) evaluateBloomBadges(ctx context.Context, ownerID string) error {
	bloomed, _, err := s.seedRepo.GetOwnerCounts(ctx, ownerID)
	if err != nil {
		return fmt.Errorf(ErrMsgBadgeCheckFailed, err)
	}

	for threshold, badgeID := range bloomBadgeThresholds {
		if bloomed < threshold {
			continue
		}
		if err := s.unlock(ctx, ownerID, badgeID); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) EvaluateWateringStreak(ctx context.Context, actorID string) error {
	since := dayclock.DaysAgo(s.clock, StreakDays-1)
	keys, err := s.ledgerRepo.ListActorDayKeys(ctx, actorID, since)
	if err != nil {
		return fmt.Errorf(ErrMsgStreakCheckFailed, err)
	}

	// The window spans exactly StreakDays day keys; a full run means one
	// distinct key per day with no gaps
	if len(keys) < StreakDays {
		return nil
	}
	return s.unlock(ctx, actorID, BadgeDevotedWaterer)
}

// unlock records the badge, once. Repeat unlocks are silent no-ops.
func (s *service) unlock(ctx context.Context, userID, badgeID string) error {
	inserted, err := s.badgeRepo.InsertBadgeUnlock(ctx, domain.BadgeUnlock{
		UserID:     userID,
		BadgeID:    badgeID,
		UnlockedAt: s.clock.Now(),
	})
	if err != nil {
		return fmt.Errorf(ErrMsgBadgeCheckFailed, err)
	}
	if !inserted {
		logger.FromContext(ctx).Debug(LogMsgBadgeAlreadyHeld, "userID", userID, "badgeID", badgeID)
		return nil
	}

	metrics.BadgeUnlocksTotal.WithLabelValues(badgeID).Inc()
	s.publisher.PublishWithRetry(ctx, event.NewBadgeUnlockedEvent(userID, badgeID))
	logger.FromContext(ctx).Info(LogMsgBadgeUnlocked, "userID", userID, "badgeID", badgeID)
	return nil
}
