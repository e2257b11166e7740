package ledger

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/sharonsgarden/garden-api/internal/metrics"
)

// StatusCache is a short-lived read-through cache in front of the ledger,
// keyed by (actor, seed, day). It is never the source of truth: a miss falls
// through to the ledger, and the TTL is far shorter than one day key. The only
// write path besides read-through is MarkWatered, invoked after a successful
// record so the same process can never report "can water" again that day.
type StatusCache struct {
	lru *expirable.LRU[string, bool]
}

// NewStatusCache creates a cache holding up to size entries for ttl each.
// Construct one per service instance; tests build their own.
func NewStatusCache(size int, ttl time.Duration) *StatusCache {
	return &StatusCache{
		lru: expirable.NewLRU[string, bool](size, nil, ttl),
	}
}

func cacheKey(actorID, seedID, dayKey string) string {
	return actorID + CacheKeySeparator + seedID + CacheKeySeparator + dayKey
}

// Get returns (watered, true) on a hit.
func (c *StatusCache) Get(actorID, seedID, dayKey string) (bool, bool) {
	watered, ok := c.lru.Get(cacheKey(actorID, seedID, dayKey))
	if ok {
		metrics.StatusCacheHits.Inc()
	} else {
		metrics.StatusCacheMisses.Inc()
	}
	return watered, ok
}

// Set stores the watered status for the triple.
func (c *StatusCache) Set(actorID, seedID, dayKey string, watered bool) {
	c.lru.Add(cacheKey(actorID, seedID, dayKey), watered)
}

// MarkWatered write-through marks the triple as watered.
func (c *StatusCache) MarkWatered(actorID, seedID, dayKey string) {
	c.lru.Add(cacheKey(actorID, seedID, dayKey), true)
}

// Invalidate drops a single triple.
func (c *StatusCache) Invalidate(actorID, seedID, dayKey string) {
	c.lru.Remove(cacheKey(actorID, seedID, dayKey))
}

// Purge drops every entry.
func (c *StatusCache) Purge() {
	c.lru.Purge()
}
