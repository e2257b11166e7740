package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sharonsgarden/garden-api/internal/domain"
)

// LedgerRepository implements the watering ledger repository for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// HasWatered reports whether a record exists for (actor, seed, day)
func (r *LedgerRepository) HasWatered(ctx context.Context, actorID, seedID, dayKey string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM watering_records
			WHERE actor_id = $1 AND seed_id = $2 AND day_key = $3
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, actorID, seedID, dayKey).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckWatering, err)
	}
	return exists, nil
}

// InsertWatering creates the record. Returns false when it already existed.
func (r *LedgerRepository) InsertWatering(ctx context.Context, rec domain.WateringRecord) (bool, error) {
	query := `
		INSERT INTO watering_records (actor_id, seed_id, day_key, watered_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (actor_id, seed_id, day_key) DO NOTHING`

	tag, err := r.db.Exec(ctx, query, rec.ActorID, rec.SeedID, rec.DayKey, rec.WateredAt)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToInsertWatering, err)
	}
	return tag.RowsAffected() > 0, nil
}

// BulkWatered returns seedID -> watered for the given day in one query
func (r *LedgerRepository) BulkWatered(ctx context.Context, actorID string, seedIDs []string, dayKey string) (map[string]bool, error) {
	query := `
		SELECT seed_id FROM watering_records
		WHERE actor_id = $1 AND day_key = $2 AND seed_id = ANY($3)`

	rows, err := r.db.Query(ctx, query, actorID, dayKey, seedIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBulkCheck, err)
	}
	defer rows.Close()

	out := make(map[string]bool, len(seedIDs))
	for _, seedID := range seedIDs {
		out[seedID] = false
	}
	for rows.Next() {
		var seedID string
		if err := rows.Scan(&seedID); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBulkCheck, err)
		}
		out[seedID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBulkCheck, err)
	}
	return out, nil
}

// ListActorDayKeys returns the actor's distinct day keys on or after
// sinceDayKey, descending
func (r *LedgerRepository) ListActorDayKeys(ctx context.Context, actorID, sinceDayKey string) ([]string, error) {
	query := `
		SELECT DISTINCT day_key FROM watering_records
		WHERE actor_id = $1 AND day_key >= $2
		ORDER BY day_key DESC`

	rows, err := r.db.Query(ctx, query, actorID, sinceDayKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDayKeys, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDayKeys, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDayKeys, err)
	}
	return keys, nil
}

// PurgeBefore deletes records strictly older than cutoffDayKey
func (r *LedgerRepository) PurgeBefore(ctx context.Context, cutoffDayKey string) (int64, error) {
	query := `DELETE FROM watering_records WHERE day_key < $1`

	tag, err := r.db.Exec(ctx, query, cutoffDayKey)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToPurgeWaterings, err)
	}
	return tag.RowsAffected(), nil
}
