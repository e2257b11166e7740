package ledger

import (
	"context"
	"fmt"

	"github.com/sharonsgarden/garden-api/internal/dayclock"
	"github.com/sharonsgarden/garden-api/internal/domain"
	"github.com/sharonsgarden/garden-api/internal/logger"
	"github.com/sharonsgarden/garden-api/internal/repository"
)

// Service is the authoritative record of who watered which seed on which day.
// A storage failure always reads as "cannot water": under-permitting is
// recoverable tomorrow, double-crediting is not.
type Service interface {
	// CanWaterToday reports whether the actor may water the seed today
	CanWaterToday(ctx context.Context, actorID, seedID string) (bool, error)

	// RecordWatering creates the per-day record. A duplicate
	// (actor, seed, day) attempt returns domain.ErrAlreadyWateredToday and
	// leaves the single existing record untouched.
	RecordWatering(ctx context.Context, actorID, seedID, dayKey string) (*domain.WateringRecord, error)

	// BulkStatus is the batched CanWaterToday for list views
	BulkStatus(ctx context.Context, actorID string, seedIDs []string) (map[string]bool, error)

	// Today returns the current canonical day key
	Today() string

	// MarkWatered write-through updates the status cache after a watering
	// committed through the growth engine's transaction
	MarkWatered(actorID, seedID, dayKey string)

	// WateredDayKeys returns the actor's distinct watering day keys on or
	// after sinceDayKey, newest first
	WateredDayKeys(ctx context.Context, actorID, sinceDayKey string) ([]string, error)

	// PurgeBefore deletes records strictly older than cutoffDayKey
	PurgeBefore(ctx context.Context, cutoffDayKey string) (int64, error)
}

type service struct {
	repo  repository.Ledger
	cache *StatusCache
	clock dayclock.Clock
}

// NewService creates a new ledger service
func NewService(repo repository.Ledger, cache *StatusCache, clock dayclock.Clock) Service {
	return &service{
		repo:  repo,
		cache: cache,
		clock: clock,
	}
}

func (s *service) Today() string {
	return dayclock.Today(s.clock)
}

func (s *service) CanWaterToday(ctx context.Context, actorID, seedID string) (bool, error) {
	dayKey := s.Today()

	if watered, ok := s.cache.Get(actorID, seedID, dayKey); ok {
		return !watered, nil
	}

	watered, err := s.repo.HasWatered(ctx, actorID, seedID, dayKey)
	if err != nil {
		// Fail closed: an unreadable ledger never grants a watering
		return false, fmt.Errorf(ErrMsgCanWaterCheckFailed, fmt.Errorf("%w: %v", domain.ErrLedgerUnavailable, err))
	}

	s.cache.Set(actorID, seedID, dayKey, watered)
	return !watered, nil
}

func (s *service) RecordWatering(ctx context.Context, actorID, seedID, dayKey string) (*domain.WateringRecord, error) {
	rec := domain.WateringRecord{
		ActorID:   actorID,
		SeedID:    seedID,
		DayKey:    dayKey,
		WateredAt: s.clock.Now(),
	}

	inserted, err := s.repo.InsertWatering(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRecordWateringFailed, fmt.Errorf("%w: %v", domain.ErrLedgerUnavailable, err))
	}

	// Either way the record now exists; the cache must say so
	s.cache.MarkWatered(actorID, seedID, dayKey)

	if !inserted {
		logger.FromContext(ctx).Debug(LogMsgDuplicateWatering,
			"actorID", actorID, "seedID", seedID, "dayKey", dayKey)
		return nil, domain.ErrAlreadyWateredToday
	}

	return &rec, nil
}

func (s *service) BulkStatus(ctx context.Context, actorID string, seedIDs []string) (map[string]bool, error) {
	dayKey := s.Today()
	result := make(map[string]bool, len(seedIDs))

	// Serve what the cache has, collect the rest for one batched read
	var misses []string
	for _, seedID := range seedIDs {
		if watered, ok := s.cache.Get(actorID, seedID, dayKey); ok {
			result[seedID] = !watered
		} else {
			misses = append(misses, seedID)
		}
	}

	if len(misses) == 0 {
		return result, nil
	}

	watered, err := s.repo.BulkWatered(ctx, actorID, misses, dayKey)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBulkStatusFailed, fmt.Errorf("%w: %v", domain.ErrLedgerUnavailable, err))
	}

	for _, seedID := range misses {
		w := watered[seedID]
		s.cache.Set(actorID, seedID, dayKey, w)
		result[seedID] = !w
	}

	return result, nil
}

func (s *service) MarkWatered(actorID, seedID, dayKey string) {
	s.cache.MarkWatered(actorID, seedID, dayKey)
}

func (s *service) WateredDayKeys(ctx context.Context, actorID, sinceDayKey string) ([]string, error) {
	keys, err := s.repo.ListActorDayKeys(ctx, actorID, sinceDayKey)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCanWaterCheckFailed, err)
	}
	return keys, nil
}

func (s *service) PurgeBefore(ctx context.Context, cutoffDayKey string) (int64, error) {
	deleted, err := s.repo.PurgeBefore(ctx, cutoffDayKey)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgPurgeFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgLedgerPurged, "cutoff", cutoffDayKey, "deleted", deleted)
	return deleted, nil
}
