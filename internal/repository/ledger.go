package repository

import (
	"context"

	"github.com/sharonsgarden/garden-api/internal/domain"
)

// Ledger handles watering record persistence. The composite
// (actor, seed, day) identity is enforced at the storage layer so duplicate
// writes collapse instead of creating second rows.
type Ledger interface {
	// HasWatered reports whether a record exists for (actor, seed, day)
	HasWatered(ctx context.Context, actorID, seedID, dayKey string) (bool, error)

	// InsertWatering creates the record. Returns false when the record
	// already existed (idempotent under retry and race).
	InsertWatering(ctx context.Context, rec domain.WateringRecord) (bool, error)

	// BulkWatered returns seedID -> watered for the given day in one query
	BulkWatered(ctx context.Context, actorID string, seedIDs []string, dayKey string) (map[string]bool, error)

	// ListActorDayKeys returns the distinct day keys on which the actor
	// watered anything, on or after sinceDayKey, descending. Feeds streak
	// badge evaluation.
	ListActorDayKeys(ctx context.Context, actorID, sinceDayKey string) ([]string, error)

	// PurgeBefore deletes records strictly older than cutoffDayKey and
	// returns the number deleted. Callers keep the cutoff at least two days
	// behind today so the sweep can never race a live day-key check.
	PurgeBefore(ctx context.Context, cutoffDayKey string) (int64, error)
}
