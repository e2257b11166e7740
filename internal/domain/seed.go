package domain

import "time"

// SeedKind is the emotion category a seed is planted under.
type SeedKind string

// Seed is the user-created growable entity that progresses toward bloom.
// WaterCount and Bloomed are only ever mutated through the growth engine's
// transactional path; cosmetic fields are owner-mutable.
type Seed struct {
	ID            string     `json:"id"`
	OwnerID       string     `json:"owner_id"`
	Kind          SeedKind   `json:"kind"`
	ColorTag      string     `json:"color_tag,omitempty"`
	DisplayName   string     `json:"display_name,omitempty"`
	Note          string     `json:"note,omitempty"`
	WaterCount    int        `json:"water_count"`
	Bloomed       bool       `json:"bloomed"`
	BloomedFlower *string    `json:"bloomed_flower,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	LastWateredAt *time.Time `json:"last_watered_at,omitempty"`
}

// SeedMeta holds the owner-mutable cosmetic fields of a seed.
type SeedMeta struct {
	ColorTag    *string `json:"color_tag,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
	Note        *string `json:"note,omitempty"`
}

// WateringRecord is the durable record of one accepted watering.
// Identity is the (actor, seed, day) triple; a record is created exactly once
// per triple and never updated.
type WateringRecord struct {
	ActorID   string    `json:"actor_id"`
	SeedID    string    `json:"seed_id"`
	DayKey    string    `json:"day_key"`
	WateredAt time.Time `json:"watered_at"`
}

// WateringResult is the outcome of a single accepted watering.
type WateringResult struct {
	SeedID            string         `json:"seed_id"`
	NewWaterCount     int            `json:"new_water_count"`
	Bloomed           bool           `json:"bloomed"`
	BloomTransitioned bool           `json:"bloom_transitioned"`
	Reward            *RewardOutcome `json:"reward,omitempty"`
}

// BadgeUnlock records an achievement unlock. Write-once per (user, badge).
type BadgeUnlock struct {
	UserID     string    `json:"user_id"`
	BadgeID    string    `json:"badge_id"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// User is a gardener. BloomCount and SeedSlots are derived values persisted
// for display; the authoritative slot check recomputes from live counts.
type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	BloomCount int       `json:"bloom_count"`
	SeedSlots  int       `json:"seed_slots"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// GardenSummary is the per-owner view backing the garden page.
type GardenSummary struct {
	OwnerID        string `json:"owner_id"`
	Seeds          []Seed `json:"seeds"`
	BloomCount     int    `json:"bloom_count"`
	UnbloomedCount int    `json:"unbloomed_count"`
	SeedSlots      int    `json:"seed_slots"`
}
