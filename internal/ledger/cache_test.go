package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusCache_MissThenHit(t *testing.T) {
	cache := NewStatusCache(10, time.Minute)

	_, ok := cache.Get("actor-1", "seed-1", "2025-06-15")
	assert.False(t, ok)

	cache.Set("actor-1", "seed-1", "2025-06-15", false)
	watered, ok := cache.Get("actor-1", "seed-1", "2025-06-15")
	assert.True(t, ok)
	assert.False(t, watered)
}

func TestStatusCache_MarkWateredOverwrites(t *testing.T) {
	cache := NewStatusCache(10, time.Minute)

	cache.Set("actor-1", "seed-1", "2025-06-15", false)
	cache.MarkWatered("actor-1", "seed-1", "2025-06-15")

	watered, ok := cache.Get("actor-1", "seed-1", "2025-06-15")
	assert.True(t, ok)
	assert.True(t, watered)
}

func TestStatusCache_KeysAreScoped(t *testing.T) {
	cache := NewStatusCache(10, time.Minute)

	cache.MarkWatered("actor-1", "seed-1", "2025-06-15")

	// Same seed and day, different actor
	_, ok := cache.Get("actor-2", "seed-1", "2025-06-15")
	assert.False(t, ok)

	// Same actor and seed, next day
	_, ok = cache.Get("actor-1", "seed-1", "2025-06-16")
	assert.False(t, ok)
}

func TestStatusCache_TTLExpiry(t *testing.T) {
	cache := NewStatusCache(10, 20*time.Millisecond)

	cache.MarkWatered("actor-1", "seed-1", "2025-06-15")
	time.Sleep(50 * time.Millisecond)

	_, ok := cache.Get("actor-1", "seed-1", "2025-06-15")
	assert.False(t, ok, "entries must expire after the TTL")
}

func TestStatusCache_Invalidate(t *testing.T) {
	cache := NewStatusCache(10, time.Minute)

	cache.MarkWatered("actor-1", "seed-1", "2025-06-15")
	cache.Invalidate("actor-1", "seed-1", "2025-06-15")

	_, ok := cache.Get("actor-1", "seed-1", "2025-06-15")
	assert.False(t, ok)
}
