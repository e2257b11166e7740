package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharonsgarden/garden-api/internal/dayclock"
	"github.com/sharonsgarden/garden-api/internal/ledger"
	"github.com/sharonsgarden/garden-api/internal/repository/memory"
)

func TestRetentionWorker_Process(t *testing.T) {
	store := memory.New()
	clock := dayclock.FixedClock{T: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}
	ledgerSvc := ledger.NewService(store, ledger.NewStatusCache(128, time.Minute), clock)
	ctx := context.Background()

	// One record safely inside the window, one well outside it
	_, err := ledgerSvc.RecordWatering(ctx, "actor-1", "seed-1", "2025-06-14")
	require.NoError(t, err)
	_, err = ledgerSvc.RecordWatering(ctx, "actor-1", "seed-2", "2025-04-01")
	require.NoError(t, err)

	w := NewRetentionWorker(ledgerSvc, nil, clock, 30)
	require.NoError(t, w.Process(ctx))

	recent, err := store.HasWatered(ctx, "actor-1", "seed-1", "2025-06-14")
	require.NoError(t, err)
	assert.True(t, recent, "records inside the window survive the sweep")

	old, err := store.HasWatered(ctx, "actor-1", "seed-2", "2025-04-01")
	require.NoError(t, err)
	assert.False(t, old, "records older than the window are purged")
}

func TestRetentionWorker_EmptySweep(t *testing.T) {
	store := memory.New()
	clock := dayclock.FixedClock{T: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}
	ledgerSvc := ledger.NewService(store, ledger.NewStatusCache(128, time.Minute), clock)

	w := NewRetentionWorker(ledgerSvc, nil, clock, 30)
	assert.NoError(t, w.Process(context.Background()))
}
