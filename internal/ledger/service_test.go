package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharonsgarden/garden-api/internal/dayclock"
	"github.com/sharonsgarden/garden-api/internal/domain"
	"github.com/sharonsgarden/garden-api/internal/repository/memory"
)

func newTestService(store *memory.Store) Service {
	clock := dayclock.FixedClock{T: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}
	return NewService(store, NewStatusCache(128, time.Minute), clock)
}

func TestCanWaterToday_FreshSeed(t *testing.T) {
	svc := newTestService(memory.New())

	can, err := svc.CanWaterToday(context.Background(), "actor-1", "seed-1")
	require.NoError(t, err)
	assert.True(t, can)
}

func TestRecordWatering_ThenCannotWater(t *testing.T) {
	svc := newTestService(memory.New())
	ctx := context.Background()

	rec, err := svc.RecordWatering(ctx, "actor-1", "seed-1", svc.Today())
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", rec.DayKey)

	can, err := svc.CanWaterToday(ctx, "actor-1", "seed-1")
	require.NoError(t, err)
	assert.False(t, can)
}

func TestRecordWatering_DuplicateIsRejectedNotDuplicated(t *testing.T) {
	store := memory.New()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.RecordWatering(ctx, "actor-1", "seed-1", svc.Today())
	require.NoError(t, err)

	_, err = svc.RecordWatering(ctx, "actor-1", "seed-1", svc.Today())
	assert.ErrorIs(t, err, domain.ErrAlreadyWateredToday)

	watered, err := store.HasWatered(ctx, "actor-1", "seed-1", svc.Today())
	require.NoError(t, err)
	assert.True(t, watered)
}

func TestCanWaterToday_ActorScoped(t *testing.T) {
	svc := newTestService(memory.New())
	ctx := context.Background()

	// Owner and a friend each get their own daily gate on the same seed
	_, err := svc.RecordWatering(ctx, "owner", "seed-1", svc.Today())
	require.NoError(t, err)

	can, err := svc.CanWaterToday(ctx, "friend", "seed-1")
	require.NoError(t, err)
	assert.True(t, can, "a different actor is still permitted today")
}

func TestCanWaterToday_FailsClosed(t *testing.T) {
	store := memory.New()
	store.FailLedger = errors.New("connection refused")
	svc := newTestService(store)

	can, err := svc.CanWaterToday(context.Background(), "actor-1", "seed-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
	assert.False(t, can, "an unreadable ledger must never grant a watering")
}

func TestBulkStatus_MatchesIndividualChecks(t *testing.T) {
	store := memory.New()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.RecordWatering(ctx, "actor-1", "seed-2", svc.Today())
	require.NoError(t, err)

	status, err := svc.BulkStatus(ctx, "actor-1", []string{"seed-1", "seed-2", "seed-3"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{
		"seed-1": true,
		"seed-2": false,
		"seed-3": true,
	}, status)

	for seedID, expected := range status {
		can, err := svc.CanWaterToday(ctx, "actor-1", seedID)
		require.NoError(t, err)
		assert.Equal(t, expected, can, "bulk and individual status must agree for %s", seedID)
	}
}

func TestBulkStatus_LedgerError(t *testing.T) {
	store := memory.New()
	store.FailLedger = errors.New("timeout")
	svc := newTestService(store)

	_, err := svc.BulkStatus(context.Background(), "actor-1", []string{"seed-1"})
	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
}

func TestPurgeBefore_RemovesOnlyOldRecords(t *testing.T) {
	store := memory.New()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.RecordWatering(ctx, "actor-1", "seed-1", "2025-05-01")
	require.NoError(t, err)
	_, err = svc.RecordWatering(ctx, "actor-1", "seed-1", svc.Today())
	require.NoError(t, err)

	deleted, err := svc.PurgeBefore(ctx, "2025-05-16")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// Current day record untouched
	can, err := svc.CanWaterToday(ctx, "actor-1", "seed-1")
	require.NoError(t, err)
	assert.False(t, can)
}

func TestWateredDayKeys(t *testing.T) {
	store := memory.New()
	svc := newTestService(store)
	ctx := context.Background()

	for _, day := range []string{"2025-06-13", "2025-06-14", "2025-06-15"} {
		_, err := svc.RecordWatering(ctx, "actor-1", "seed-1", day)
		require.NoError(t, err)
	}
	// Another seed on an overlapping day must not duplicate the key
	_, err := svc.RecordWatering(ctx, "actor-1", "seed-2", "2025-06-15")
	require.NoError(t, err)

	keys, err := svc.WateredDayKeys(ctx, "actor-1", "2025-06-13")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-15", "2025-06-14", "2025-06-13"}, keys)
}
