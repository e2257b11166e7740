// Package growth owns the seed lifecycle: planting under the slot policy,
// the transactional watering path, and the bloom transition at threshold.
package growth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sharonsgarden/garden-api/internal/dayclock"
	"github.com/sharonsgarden/garden-api/internal/domain"
	"github.com/sharonsgarden/garden-api/internal/event"
	"github.com/sharonsgarden/garden-api/internal/ledger"
	"github.com/sharonsgarden/garden-api/internal/logger"
	"github.com/sharonsgarden/garden-api/internal/metrics"
	"github.com/sharonsgarden/garden-api/internal/repository"
	"github.com/sharonsgarden/garden-api/internal/reward"
	"github.com/sharonsgarden/garden-api/internal/slot"
)

// Service defines the seed lifecycle operations
type Service interface {
	// PlantSeed creates a seed for the owner, subject to the slot allowance.
	// The owner row is created on first contact.
	PlantSeed(ctx context.Context, ownerID, username string, kind domain.SeedKind, meta domain.SeedMeta) (*domain.Seed, error)

	// WaterSeed applies one watering by actorID. At most one watering per
	// (actor, seed, day) is ever accepted; the seventh accepted watering
	// blooms the seed and dispatches its reward.
	WaterSeed(ctx context.Context, actorID, seedID string) (*domain.WateringResult, error)

	// GetSeed retrieves a seed by id
	GetSeed(ctx context.Context, seedID string) (*domain.Seed, error)

	// ListGarden returns the owner's seeds with derived counts and the
	// current slot allowance
	ListGarden(ctx context.Context, ownerID string) (*domain.GardenSummary, error)

	// UpdateSeedMeta updates the cosmetic fields. Only the owner may edit;
	// kind, water count and bloom state are immutable here.
	UpdateSeedMeta(ctx context.Context, actorID, seedID string, meta domain.SeedMeta) (*domain.Seed, error)
}

type service struct {
	seedRepo  repository.Seed
	userRepo  repository.User
	ledgerSvc ledger.Service
	rewardSvc reward.Service
	slotSvc   slot.Service
	publisher *event.ResilientPublisher
	clock     dayclock.Clock
}

// NewService creates a new growth service
func NewService(
	seedRepo repository.Seed,
	userRepo repository.User,
	ledgerSvc ledger.Service,
	rewardSvc reward.Service,
	slotSvc slot.Service,
	publisher *event.ResilientPublisher,
	clock dayclock.Clock,
) Service {
	return &service{
		seedRepo:  seedRepo,
		userRepo:  userRepo,
		ledgerSvc: ledgerSvc,
		rewardSvc: rewardSvc,
		slotSvc:   slotSvc,
		publisher: publisher,
		clock:     clock,
	}
}

func (s *service) PlantSeed(ctx context.Context, ownerID, username string, kind domain.SeedKind, meta domain.SeedMeta) (*domain.Seed, error) {
	if !domain.ValidSeedKind(kind) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKind, kind)
	}

	if _, err := s.userRepo.EnsureUser(ctx, ownerID, username); err != nil {
		return nil, fmt.Errorf(ErrMsgPlantFailed, err)
	}

	bloomed, unbloomed, err := s.seedRepo.GetOwnerCounts(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSlotCheckFailed, err)
	}
	slots := slot.For(bloomed)
	if unbloomed >= slots {
		return nil, fmt.Errorf("%w: %d of %d slots in use", domain.ErrSlotLimitReached, unbloomed, slots)
	}

	seed := &domain.Seed{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Kind:      kind,
		CreatedAt: s.clock.Now(),
	}
	if meta.ColorTag != nil {
		seed.ColorTag = *meta.ColorTag
	}
	if meta.DisplayName != nil {
		seed.DisplayName = *meta.DisplayName
	}
	if meta.Note != nil {
		seed.Note = *meta.Note
	}

	if err := s.seedRepo.CreateSeed(ctx, seed); err != nil {
		return nil, fmt.Errorf(ErrMsgPlantFailed, err)
	}

	metrics.SeedsPlantedTotal.WithLabelValues(string(kind)).Inc()
	s.publisher.PublishWithRetry(ctx, event.NewSeedPlantedEvent(seed.ID, ownerID, string(kind)))
	logger.FromContext(ctx).Info(LogMsgSeedPlanted,
		"seedID", seed.ID, "ownerID", ownerID, "kind", kind)

	return seed, nil
}

func (s *service) WaterSeed(ctx context.Context, actorID, seedID string) (*domain.WateringResult, error) {
	log := logger.FromContext(ctx)

	// Cheap pre-checks outside the transaction. All of them are re-verified
	// under lock; these exist to reject the common cases without contending.
	seed, err := s.seedRepo.GetSeed(ctx, seedID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetSeedFailed, err)
	}
	if err := rejectUnwaterable(seed); err != nil {
		if errors.Is(err, domain.ErrAtCapacity) {
			log.Warn(LogMsgCapacityAnomaly, "seedID", seedID, "waterCount", seed.WaterCount)
		}
		return nil, err
	}

	can, err := s.ledgerSvc.CanWaterToday(ctx, actorID, seedID)
	if err != nil {
		metrics.WateringRejectionsTotal.WithLabelValues(metrics.ReasonLedgerUnavailable).Inc()
		return nil, err
	}
	if !can {
		metrics.WateringRejectionsTotal.WithLabelValues(metrics.ReasonAlreadyWatered).Inc()
		return nil, domain.ErrAlreadyWateredToday
	}

	dayKey := s.ledgerSvc.Today()
	for attempt := 1; attempt <= MaxConflictRetries; attempt++ {
		result, conflicted, err := s.waterOnce(ctx, actorID, seedID, dayKey)
		if err != nil {
			return nil, err
		}
		if !conflicted {
			return result, nil
		}
		log.Warn(LogMsgWateringConflict, "seedID", seedID, "actorID", actorID, "attempt", attempt)
	}

	metrics.WateringRejectionsTotal.WithLabelValues(metrics.ReasonConflictExhausted).Inc()
	log.Error(LogMsgConflictsExhausted, "seedID", seedID, "actorID", actorID)
	return nil, domain.ErrConcurrentConflict
}

// waterOnce runs one transactional watering attempt. conflicted=true means
// the compare-and-swap guard missed and the caller should retry.
func (s *service) waterOnce(ctx context.Context, actorID, seedID, dayKey string) (result *domain.WateringResult, conflicted bool, err error) {
	log := logger.FromContext(ctx)

	tx, err := s.seedRepo.BeginTx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	seed, err := tx.GetSeedForUpdate(ctx, seedID)
	if err != nil {
		return nil, false, fmt.Errorf(ErrMsgGetSeedFailed, err)
	}
	if err := rejectUnwaterable(seed); err != nil {
		return nil, false, err
	}

	wateredAt := s.clock.Now()
	inserted, err := tx.InsertWateringRecord(ctx, domain.WateringRecord{
		ActorID:   actorID,
		SeedID:    seedID,
		DayKey:    dayKey,
		WateredAt: wateredAt,
	})
	if err != nil {
		metrics.WateringRejectionsTotal.WithLabelValues(metrics.ReasonLedgerUnavailable).Inc()
		return nil, false, fmt.Errorf(ErrMsgWaterFailed, fmt.Errorf("%w: %v", domain.ErrLedgerUnavailable, err))
	}
	if !inserted {
		// Lost the day-key race to a parallel request
		s.ledgerSvc.MarkWatered(actorID, seedID, dayKey)
		metrics.WateringRejectionsTotal.WithLabelValues(metrics.ReasonAlreadyWatered).Inc()
		return nil, false, domain.ErrAlreadyWateredToday
	}

	newCount := seed.WaterCount + 1
	blooming := newCount == domain.BloomThreshold

	var flower domain.FlowerSpecies
	var flowerName *string
	if blooming {
		flower = s.rewardSvc.PickFlower(seed.Kind)
		flowerName = &flower.Name
	}

	applied, err := tx.ApplyWatering(ctx, repository.ApplyWateringParams{
		SeedID:             seedID,
		ExpectedWaterCount: seed.WaterCount,
		Bloomed:            blooming,
		BloomedFlower:      flowerName,
		WateredAt:          wateredAt,
	})
	if err != nil {
		return nil, false, fmt.Errorf(ErrMsgWaterFailed, err)
	}
	if !applied {
		return nil, true, nil
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	// Committed. Everything below is side effects that must not undo it.
	s.ledgerSvc.MarkWatered(actorID, seedID, dayKey)
	metrics.WateringsTotal.Inc()
	s.publisher.PublishWithRetry(ctx, event.NewSeedWateredEvent(seedID, actorID, seed.OwnerID, dayKey, newCount))
	log.Info(LogMsgSeedWatered,
		"seedID", seedID, "actorID", actorID, "dayKey", dayKey, "waterCount", newCount)

	if err := s.rewardSvc.EvaluateWateringStreak(ctx, actorID); err != nil {
		log.Error(LogMsgStreakCheckFail, "actorID", actorID, "error", err)
	}

	result = &domain.WateringResult{
		SeedID:            seedID,
		NewWaterCount:     newCount,
		Bloomed:           blooming,
		BloomTransitioned: blooming,
	}

	if blooming {
		seed.WaterCount = newCount
		seed.Bloomed = true
		seed.BloomedFlower = flowerName
		log.Info(LogMsgSeedBloomed, "seedID", seedID, "ownerID", seed.OwnerID, "flower", flower.Name)

		outcome, err := s.rewardSvc.Dispatch(ctx, seed, actorID, flower)
		if err != nil {
			log.Error(LogMsgRewardDispatchFail, "seedID", seedID, "error", err)
		} else {
			result.Reward = outcome
		}

		if _, err := s.slotSvc.Recompute(ctx, seed.OwnerID); err != nil {
			log.Error(LogMsgSlotRecomputeFail, "ownerID", seed.OwnerID, "error", err)
		}
	}

	return result, false, nil
}

// rejectUnwaterable enforces the terminal states: a bloomed seed never takes
// another watering, and an unbloomed seed at threshold is a data anomaly that
// fails safe rather than over-granting.
func rejectUnwaterable(seed *domain.Seed) error {
	if seed.Bloomed {
		metrics.WateringRejectionsTotal.WithLabelValues(metrics.ReasonAlreadyBloomed).Inc()
		return fmt.Errorf("%w: %s", domain.ErrAlreadyBloomed, seed.ID)
	}
	if seed.WaterCount >= domain.BloomThreshold {
		metrics.WateringRejectionsTotal.WithLabelValues(metrics.ReasonAtCapacity).Inc()
		return fmt.Errorf("%w: %s", domain.ErrAtCapacity, seed.ID)
	}
	return nil
}

func (s *service) GetSeed(ctx context.Context, seedID string) (*domain.Seed, error) {
	seed, err := s.seedRepo.GetSeed(ctx, seedID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetSeedFailed, err)
	}
	return seed, nil
}

func (s *service) ListGarden(ctx context.Context, ownerID string) (*domain.GardenSummary, error) {
	seeds, err := s.seedRepo.ListSeedsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListGardenFailed, err)
	}

	var bloomed, unbloomed int
	for _, seed := range seeds {
		if seed.Bloomed {
			bloomed++
		} else {
			unbloomed++
		}
	}

	return &domain.GardenSummary{
		OwnerID:        ownerID,
		Seeds:          seeds,
		BloomCount:     bloomed,
		UnbloomedCount: unbloomed,
		SeedSlots:      slot.For(bloomed),
	}, nil
}

func (s *service) UpdateSeedMeta(ctx context.Context, actorID, seedID string, meta domain.SeedMeta) (*domain.Seed, error) {
	seed, err := s.seedRepo.GetSeed(ctx, seedID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetSeedFailed, err)
	}
	if seed.OwnerID != actorID {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotSeedOwner, seedID)
	}

	if err := s.seedRepo.UpdateSeedMeta(ctx, seedID, meta); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateMetaFailed, err)
	}

	return s.seedRepo.GetSeed(ctx, seedID)
}
