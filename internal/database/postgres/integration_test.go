package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sharonsgarden/garden-api/internal/database"
	"github.com/sharonsgarden/garden-api/internal/domain"
	"github.com/sharonsgarden/garden-api/internal/repository"
)

// setupTestDB starts a Postgres container, applies migrations and returns a
// pool. Skips when Docker is unavailable.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil {
		t.Skipf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, database.MigrateUp(connStr))

	pool, err := database.NewPool(connStr, 4, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func TestRepositories_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	users := NewUserRepository(pool)
	seeds := NewSeedRepository(pool)
	ledger := NewLedgerRepository(pool)
	badges := NewBadgeRepository(pool)
	rewards := NewRewardRepository(pool)

	owner, err := users.EnsureUser(ctx, "owner-1", "sharon")
	require.NoError(t, err)
	assert.Equal(t, 1, owner.SeedSlots)

	t.Run("EnsureUser is idempotent", func(t *testing.T) {
		again, err := users.EnsureUser(ctx, "owner-1", "")
		require.NoError(t, err)
		assert.Equal(t, "sharon", again.Username, "empty username must not clobber the stored one")
	})

	seed := &domain.Seed{
		ID:        uuid.NewString(),
		OwnerID:   "owner-1",
		Kind:      domain.SeedKindHope,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, seeds.CreateSeed(ctx, seed))

	t.Run("watering transaction", func(t *testing.T) {
		tx, err := seeds.BeginTx(ctx)
		require.NoError(t, err)

		locked, err := tx.GetSeedForUpdate(ctx, seed.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, locked.WaterCount)

		now := time.Now().UTC()
		inserted, err := tx.InsertWateringRecord(ctx, domain.WateringRecord{
			ActorID: "actor-1", SeedID: seed.ID, DayKey: "2025-06-15", WateredAt: now,
		})
		require.NoError(t, err)
		assert.True(t, inserted)

		applied, err := tx.ApplyWatering(ctx, repository.ApplyWateringParams{
			SeedID: seed.ID, ExpectedWaterCount: 0, WateredAt: now,
		})
		require.NoError(t, err)
		assert.True(t, applied)

		require.NoError(t, tx.Commit(ctx))

		got, err := seeds.GetSeed(ctx, seed.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.WaterCount)
		require.NotNil(t, got.LastWateredAt)
	})

	t.Run("duplicate day record collapses", func(t *testing.T) {
		tx, err := seeds.BeginTx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(ctx) }()

		inserted, err := tx.InsertWateringRecord(ctx, domain.WateringRecord{
			ActorID: "actor-1", SeedID: seed.ID, DayKey: "2025-06-15", WateredAt: time.Now().UTC(),
		})
		require.NoError(t, err)
		assert.False(t, inserted)
	})

	t.Run("stale expected count misses the guard", func(t *testing.T) {
		tx, err := seeds.BeginTx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(ctx) }()

		applied, err := tx.ApplyWatering(ctx, repository.ApplyWateringParams{
			SeedID: seed.ID, ExpectedWaterCount: 0, WateredAt: time.Now().UTC(),
		})
		require.NoError(t, err)
		assert.False(t, applied, "water_count is already 1; the CAS must miss")
	})

	t.Run("ledger queries", func(t *testing.T) {
		watered, err := ledger.HasWatered(ctx, "actor-1", seed.ID, "2025-06-15")
		require.NoError(t, err)
		assert.True(t, watered)

		bulk, err := ledger.BulkWatered(ctx, "actor-1", []string{seed.ID, uuid.NewString()}, "2025-06-15")
		require.NoError(t, err)
		assert.True(t, bulk[seed.ID])

		keys, err := ledger.ListActorDayKeys(ctx, "actor-1", "2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-06-15"}, keys)
	})

	t.Run("purge respects the cutoff", func(t *testing.T) {
		_, err := ledger.InsertWatering(ctx, domain.WateringRecord{
			ActorID: "actor-1", SeedID: seed.ID, DayKey: "2025-05-01", WateredAt: time.Now().UTC(),
		})
		require.NoError(t, err)

		deleted, err := ledger.PurgeBefore(ctx, "2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		watered, err := ledger.HasWatered(ctx, "actor-1", seed.ID, "2025-06-15")
		require.NoError(t, err)
		assert.True(t, watered, "records on or after the cutoff survive")
	})

	t.Run("badge unlocks are write-once", func(t *testing.T) {
		unlock := domain.BadgeUnlock{UserID: "owner-1", BadgeID: "first_bloom", UnlockedAt: time.Now().UTC()}

		inserted, err := badges.InsertBadgeUnlock(ctx, unlock)
		require.NoError(t, err)
		assert.True(t, inserted)

		inserted, err = badges.InsertBadgeUnlock(ctx, unlock)
		require.NoError(t, err)
		assert.False(t, inserted)

		list, err := badges.ListBadgeUnlocks(ctx, "owner-1")
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("reward round trip", func(t *testing.T) {
		outcome := &domain.RewardOutcome{
			ID:     uuid.NewString(),
			SeedID: seed.ID,
			UserID: "owner-1",
			Flower: domain.FlowerSpecies{
				Name: "sunrise tulip", DisplayName: "Sunrise Tulip",
				Emoji: "🌷", Rarity: domain.RarityCommon,
			},
			Kind:      domain.RewardKindQuote,
			Message:   "Your hope seed bloomed",
			Quote:     &domain.QuoteReward{Text: "No rain, no flowers.", Author: "proverb"},
			CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, rewards.InsertReward(ctx, outcome))

		got, err := rewards.GetRewardBySeed(ctx, seed.ID)
		require.NoError(t, err)
		assert.Equal(t, outcome.ID, got.ID)
		assert.Equal(t, outcome.Flower, got.Flower)
		require.NotNil(t, got.Quote)
		assert.Nil(t, got.Sticker)

		_, err = rewards.GetRewardBySeed(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrRewardNotFound)
	})

	t.Run("seed meta update", func(t *testing.T) {
		name := "grandma's seed"
		require.NoError(t, seeds.UpdateSeedMeta(ctx, seed.ID, domain.SeedMeta{DisplayName: &name}))

		got, err := seeds.GetSeed(ctx, seed.ID)
		require.NoError(t, err)
		assert.Equal(t, name, got.DisplayName)

		assert.ErrorIs(t, seeds.UpdateSeedMeta(ctx, uuid.NewString(), domain.SeedMeta{DisplayName: &name}),
			domain.ErrSeedNotFound)
	})

	t.Run("owner counts", func(t *testing.T) {
		bloomed, unbloomed, err := seeds.GetOwnerCounts(ctx, "owner-1")
		require.NoError(t, err)
		assert.Equal(t, 0, bloomed)
		assert.Equal(t, 1, unbloomed)
	})
}
