package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Common event types
const (
	SeedPlanted   Type = "seed.planted"
	SeedWatered   Type = "seed.watered"
	SeedBloomed   Type = "seed.bloomed"
	BadgeUnlocked Type = "badge.unlocked"
	LedgerPurged  Type = "ledger.purged"
)

// Typed event payloads for type safety

// SeedPlantedPayloadV1 is the typed payload for seed planted events
type SeedPlantedPayloadV1 struct {
	SeedID    string `json:"seed_id"`
	OwnerID   string `json:"owner_id"`
	Kind      string `json:"kind"`
	Timestamp int64  `json:"timestamp"`
}

// SeedWateredPayloadV1 is the typed payload for seed watered events
type SeedWateredPayloadV1 struct {
	SeedID     string `json:"seed_id"`
	ActorID    string `json:"actor_id"`
	OwnerID    string `json:"owner_id"`
	DayKey     string `json:"day_key"`
	WaterCount int    `json:"water_count"`
	Timestamp  int64  `json:"timestamp"`
}

// SeedBloomedPayloadV1 is the typed payload for bloom transition events
type SeedBloomedPayloadV1 struct {
	SeedID     string `json:"seed_id"`
	OwnerID    string `json:"owner_id"`
	Kind       string `json:"kind"`
	Flower     string `json:"flower"`
	Rarity     string `json:"rarity"`
	RewardKind string `json:"reward_kind"`
	RewardID   string `json:"reward_id"`
	WateredBy  string `json:"watered_by"`
	Timestamp  int64  `json:"timestamp"`
}

// BadgeUnlockedPayloadV1 is the typed payload for badge unlock events
type BadgeUnlockedPayloadV1 struct {
	UserID    string `json:"user_id"`
	BadgeID   string `json:"badge_id"`
	Timestamp int64  `json:"timestamp"`
}

// LedgerPurgedPayloadV1 is the typed payload for retention sweep events
type LedgerPurgedPayloadV1 struct {
	CutoffDayKey    string `json:"cutoff_day_key"`
	RecordsAffected int64  `json:"records_affected"`
	Timestamp       int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewSeedPlantedEvent creates a new seed planted event
func NewSeedPlantedEvent(seedID, ownerID, kind string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SeedPlanted,
		Payload: SeedPlantedPayloadV1{
			SeedID:    seedID,
			OwnerID:   ownerID,
			Kind:      kind,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewSeedWateredEvent creates a new seed watered event
func NewSeedWateredEvent(seedID, actorID, ownerID, dayKey string, waterCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SeedWatered,
		Payload: SeedWateredPayloadV1{
			SeedID:     seedID,
			ActorID:    actorID,
			OwnerID:    ownerID,
			DayKey:     dayKey,
			WaterCount: waterCount,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewSeedBloomedEvent creates a new bloom transition event
func NewSeedBloomedEvent(seedID, ownerID, kind, flower, rarity, rewardKind, rewardID, wateredBy string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SeedBloomed,
		Payload: SeedBloomedPayloadV1{
			SeedID:     seedID,
			OwnerID:    ownerID,
			Kind:       kind,
			Flower:     flower,
			Rarity:     rarity,
			RewardKind: rewardKind,
			RewardID:   rewardID,
			WateredBy:  wateredBy,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewBadgeUnlockedEvent creates a new badge unlocked event
func NewBadgeUnlockedEvent(userID, badgeID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BadgeUnlocked,
		Payload: BadgeUnlockedPayloadV1{
			UserID:    userID,
			BadgeID:   badgeID,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewLedgerPurgedEvent creates a new retention sweep event
func NewLedgerPurgedEvent(cutoffDayKey string, recordsAffected int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LedgerPurged,
		Payload: LedgerPurgedPayloadV1{
			CutoffDayKey:    cutoffDayKey,
			RecordsAffected: recordsAffected,
			Timestamp:       time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; publishers that must not block use the
	// ResilientPublisher in front of the bus.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
