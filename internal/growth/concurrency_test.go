package growth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharonsgarden/garden-api/internal/domain"
)

func TestWaterSeed_ConcurrentDistinctActors(t *testing.T) {
	ts := newTestStack(t)
	seed := ts.plant(t, "owner-1")

	const actors = 5
	var wg sync.WaitGroup
	errs := make([]error, actors)

	for i := 0; i < actors; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = ts.growth.WaterSeed(context.Background(), fmt.Sprintf("actor-%d", i), seed.ID)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "actor-%d", i)
	}

	got, err := ts.growth.GetSeed(context.Background(), seed.ID)
	require.NoError(t, err)
	assert.Equal(t, actors, got.WaterCount, "every distinct actor's watering must count exactly once")
}

func TestWaterSeed_ConcurrentSameActorCountsOnce(t *testing.T) {
	ts := newTestStack(t)
	seed := ts.plant(t, "owner-1")

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = ts.growth.WaterSeed(context.Background(), "actor-1", seed.ID)
		}(i)
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
		} else {
			assert.ErrorIs(t, err, domain.ErrAlreadyWateredToday)
		}
	}
	assert.Equal(t, 1, accepted, "the same actor gets exactly one accepted watering per day")

	got, err := ts.growth.GetSeed(context.Background(), seed.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.WaterCount)
}

func TestWaterSeed_ConcurrentBloomRace(t *testing.T) {
	ts := newTestStack(t)
	ctx := context.Background()
	seed := ts.plant(t, "owner-1")

	// One watering short of bloom, then race many actors for the last one
	for i := 0; i < domain.BloomThreshold-1; i++ {
		_, err := ts.growth.WaterSeed(ctx, fmt.Sprintf("filler-%d", i), seed.ID)
		require.NoError(t, err)
	}

	const racers = 6
	var wg sync.WaitGroup
	results := make([]*domain.WateringResult, racers)
	errs := make([]error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = ts.growth.WaterSeed(ctx, fmt.Sprintf("racer-%d", i), seed.ID)
		}(i)
	}
	wg.Wait()

	blooms := 0
	for i := range results {
		if errs[i] != nil {
			// Losers see the terminal state, never a double credit
			assert.True(t,
				errors.Is(errs[i], domain.ErrAlreadyBloomed) || errors.Is(errs[i], domain.ErrAtCapacity),
				"unexpected error: %v", errs[i])
			continue
		}
		if results[i].BloomTransitioned {
			blooms++
		}
	}
	assert.Equal(t, 1, blooms, "exactly one racer may deliver the bloom-transitioning watering")

	got, err := ts.growth.GetSeed(ctx, seed.ID)
	require.NoError(t, err)
	assert.True(t, got.Bloomed)
	assert.Equal(t, domain.BloomThreshold, got.WaterCount, "water count never exceeds the threshold")

	// Exactly one reward was stored for the seed
	reward, err := ts.store.GetRewardBySeed(ctx, seed.ID)
	require.NoError(t, err)
	assert.Equal(t, seed.ID, reward.SeedID)
}
