package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()

	var received []Event
	bus.Subscribe(SeedBloomed, func(ctx context.Context, e Event) error {
		received = append(received, e)
		return nil
	})

	e := NewSeedBloomedEvent("seed-1", "owner-1", "hope", "sunflower", "rare", "quote", "reward-1", "actor-1")
	require.NoError(t, bus.Publish(context.Background(), e))

	require.Len(t, received, 1)
	payload, ok := received[0].Payload.(SeedBloomedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "seed-1", payload.SeedID)
	assert.Equal(t, "sunflower", payload.Flower)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), NewBadgeUnlockedEvent("u1", "first_bloom")))
}

func TestMemoryBus_HandlerErrorAggregated(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe(SeedWatered, func(ctx context.Context, e Event) error {
		return errors.New("handler boom")
	})
	bus.Subscribe(SeedWatered, func(ctx context.Context, e Event) error {
		return nil
	})

	err := bus.Publish(context.Background(), NewSeedWateredEvent("s1", "a1", "o1", "2025-06-15", 3))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler boom")
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(base, 2))
	assert.Equal(t, 16*time.Second, CalculateRetryDelay(base, 4))
}

// failNTimesBus fails the first n publishes, then succeeds
type failNTimesBus struct {
	mu       sync.Mutex
	failures int
	calls    int
}

func (b *failNTimesBus) Publish(ctx context.Context, e Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	if b.calls <= b.failures {
		return errors.New("bus unavailable")
	}
	return nil
}

func (b *failNTimesBus) Subscribe(eventType Type, handler Handler) {}

func (b *failNTimesBus) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func TestResilientPublisher_RetriesUntilSuccess(t *testing.T) {
	inner := &failNTimesBus{failures: 2}
	path := t.TempDir() + "/deadletter.jsonl"

	rp, err := NewResilientPublisher(inner, 5, time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), NewBadgeUnlockedEvent("u1", "fifth_bloom"))

	assert.Eventually(t, func() bool {
		return inner.callCount() >= 3
	}, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, rp.Shutdown(context.Background()))
}

func TestResilientPublisher_SuccessFirstTry(t *testing.T) {
	inner := &failNTimesBus{failures: 0}
	path := t.TempDir() + "/deadletter.jsonl"

	rp, err := NewResilientPublisher(inner, 3, time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), NewSeedPlantedEvent("s1", "o1", "joy"))
	assert.Equal(t, 1, inner.callCount())

	require.NoError(t, rp.Shutdown(context.Background()))
}
