package repository

import (
	"context"
	"time"

	"github.com/sharonsgarden/garden-api/internal/domain"
)

// Seed handles seed persistence
type Seed interface {
	// CreateSeed inserts a new seed
	CreateSeed(ctx context.Context, seed *domain.Seed) error

	// GetSeed retrieves a seed by id
	GetSeed(ctx context.Context, seedID string) (*domain.Seed, error)

	// ListSeedsByOwner returns all seeds planted by an owner, newest first
	ListSeedsByOwner(ctx context.Context, ownerID string) ([]domain.Seed, error)

	// GetOwnerCounts returns (bloomed, unbloomed) seed counts for an owner
	GetOwnerCounts(ctx context.Context, ownerID string) (bloomed int, unbloomed int, err error)

	// UpdateSeedMeta updates the cosmetic fields; nil fields are left unchanged
	UpdateSeedMeta(ctx context.Context, seedID string, meta domain.SeedMeta) error

	// Transaction support for the watering path
	BeginTx(ctx context.Context) (SeedTx, error)
}

// ApplyWateringParams carries the compare-and-swap watering update.
// ExpectedWaterCount is the count the caller read under lock; the update is
// guarded on it so a concurrent increment surfaces as a conflict instead of a
// lost update.
type ApplyWateringParams struct {
	SeedID             string
	ExpectedWaterCount int
	Bloomed            bool
	BloomedFlower      *string
	WateredAt          time.Time
}

// SeedTx defines the interface for the watering transaction
type SeedTx interface {
	Tx

	// GetSeedForUpdate retrieves the seed with a row lock
	GetSeedForUpdate(ctx context.Context, seedID string) (*domain.Seed, error)

	// InsertWateringRecord creates the per-day ledger row inside the
	// transaction. Returns false when the (actor, seed, day) record already
	// exists.
	InsertWateringRecord(ctx context.Context, rec domain.WateringRecord) (bool, error)

	// ApplyWatering increments water_count by one, guarded on
	// ExpectedWaterCount. Returns false when the guard did not match.
	ApplyWatering(ctx context.Context, params ApplyWateringParams) (bool, error)
}
