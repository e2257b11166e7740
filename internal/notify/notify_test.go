package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sharonsgarden/garden-api/internal/event"
)

func TestNotifier_HandlesBloomAndBadgeEvents(t *testing.T) {
	bus := event.NewMemoryBus()
	New().Register(bus)

	ctx := context.Background()

	err := bus.Publish(ctx, event.NewSeedBloomedEvent(
		"seed-1", "sharon", "hope", "dawn_lotus", "rare", "quote", "reward-1", "visitor-7"))
	assert.NoError(t, err)

	err = bus.Publish(ctx, event.NewBadgeUnlockedEvent("sharon", "first_bloom"))
	assert.NoError(t, err)
}

func TestNotifier_IgnoresMalformedPayload(t *testing.T) {
	bus := event.NewMemoryBus()
	New().Register(bus)

	// Wrong payload type for the event; handler logs and moves on
	err := bus.Publish(context.Background(), event.Event{
		Type:    event.SeedBloomed,
		Payload: map[string]string{"seed_id": "seed-1"},
	})
	assert.NoError(t, err)
}
