package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sharonsgarden/garden-api/internal/domain"
	"github.com/sharonsgarden/garden-api/internal/repository"
)

const seedColumns = `seed_id, owner_id, kind, color_tag, display_name, note,
	water_count, bloomed, bloomed_flower, created_at, last_watered_at`

// SeedRepository implements the seed repository for PostgreSQL
type SeedRepository struct {
	db *pgxpool.Pool
}

// NewSeedRepository creates a new seed repository
func NewSeedRepository(db *pgxpool.Pool) *SeedRepository {
	return &SeedRepository{db: db}
}

// rowScanner covers pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSeed(row rowScanner) (*domain.Seed, error) {
	var seed domain.Seed
	err := row.Scan(
		&seed.ID, &seed.OwnerID, &seed.Kind, &seed.ColorTag, &seed.DisplayName,
		&seed.Note, &seed.WaterCount, &seed.Bloomed, &seed.BloomedFlower,
		&seed.CreatedAt, &seed.LastWateredAt,
	)
	if err != nil {
		return nil, err
	}
	return &seed, nil
}

// CreateSeed inserts a new seed
func (r *SeedRepository) CreateSeed(ctx context.Context, seed *domain.Seed) error {
	query := `
		INSERT INTO seeds (seed_id, owner_id, kind, color_tag, display_name, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		seed.ID, seed.OwnerID, seed.Kind, seed.ColorTag, seed.DisplayName, seed.Note, seed.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertSeed, err)
	}
	return nil
}

// GetSeed retrieves a seed by id
func (r *SeedRepository) GetSeed(ctx context.Context, seedID string) (*domain.Seed, error) {
	query := `SELECT ` + seedColumns + ` FROM seeds WHERE seed_id = $1`

	seed, err := scanSeed(r.db.QueryRow(ctx, query, seedID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSeedNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSeed, err)
	}
	return seed, nil
}

// ListSeedsByOwner returns all seeds planted by an owner, newest first
func (r *SeedRepository) ListSeedsByOwner(ctx context.Context, ownerID string) ([]domain.Seed, error) {
	query := `SELECT ` + seedColumns + ` FROM seeds WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSeeds, err)
	}
	defer rows.Close()

	var seeds []domain.Seed
	for rows.Next() {
		seed, err := scanSeed(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSeeds, err)
		}
		seeds = append(seeds, *seed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSeeds, err)
	}
	return seeds, nil
}

// GetOwnerCounts returns (bloomed, unbloomed) seed counts for an owner
func (r *SeedRepository) GetOwnerCounts(ctx context.Context, ownerID string) (int, int, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE bloomed),
			COUNT(*) FILTER (WHERE NOT bloomed)
		FROM seeds WHERE owner_id = $1`

	var bloomed, unbloomed int
	if err := r.db.QueryRow(ctx, query, ownerID).Scan(&bloomed, &unbloomed); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountSeeds, err)
	}
	return bloomed, unbloomed, nil
}

// UpdateSeedMeta updates the cosmetic fields; nil fields are left unchanged
func (r *SeedRepository) UpdateSeedMeta(ctx context.Context, seedID string, meta domain.SeedMeta) error {
	query := `
		UPDATE seeds SET
			color_tag = COALESCE($2, color_tag),
			display_name = COALESCE($3, display_name),
			note = COALESCE($4, note)
		WHERE seed_id = $1`

	tag, err := r.db.Exec(ctx, query, seedID, meta.ColorTag, meta.DisplayName, meta.Note)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateSeedMeta, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSeedNotFound
	}
	return nil
}

// BeginTx starts a transaction and returns a SeedTx
func (r *SeedRepository) BeginTx(ctx context.Context) (repository.SeedTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &seedTx{tx: tx}, nil
}

// seedTx implements repository.SeedTx
type seedTx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *seedTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction, translating the driver sentinel
func (t *seedTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return repository.ErrTxClosed
		}
		return err
	}
	return nil
}

// GetSeedForUpdate retrieves the seed with a row lock
func (t *seedTx) GetSeedForUpdate(ctx context.Context, seedID string) (*domain.Seed, error) {
	query := `SELECT ` + seedColumns + ` FROM seeds WHERE seed_id = $1 FOR UPDATE`

	seed, err := scanSeed(t.tx.QueryRow(ctx, query, seedID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSeedNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockSeed, err)
	}
	return seed, nil
}

// InsertWateringRecord creates the per-day ledger row inside the transaction.
// Returns false when the (actor, seed, day) record already exists.
func (t *seedTx) InsertWateringRecord(ctx context.Context, rec domain.WateringRecord) (bool, error) {
	query := `
		INSERT INTO watering_records (actor_id, seed_id, day_key, watered_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (actor_id, seed_id, day_key) DO NOTHING`

	tag, err := t.tx.Exec(ctx, query, rec.ActorID, rec.SeedID, rec.DayKey, rec.WateredAt)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToInsertWatering, err)
	}
	return tag.RowsAffected() > 0, nil
}

// ApplyWatering increments water_count by one, guarded on the expected count.
// Returns false when the guard did not match.
func (t *seedTx) ApplyWatering(ctx context.Context, params repository.ApplyWateringParams) (bool, error) {
	query := `
		UPDATE seeds SET
			water_count = water_count + 1,
			bloomed = $3,
			bloomed_flower = COALESCE($4, bloomed_flower),
			last_watered_at = $5
		WHERE seed_id = $1 AND water_count = $2`

	tag, err := t.tx.Exec(ctx, query,
		params.SeedID, params.ExpectedWaterCount, params.Bloomed, params.BloomedFlower, params.WateredAt)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToApplyWatering, err)
	}
	return tag.RowsAffected() > 0, nil
}
