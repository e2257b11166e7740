package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sharonsgarden/garden-api/internal/domain"
)

// BadgeRepository implements the badge repository for PostgreSQL
type BadgeRepository struct {
	db *pgxpool.Pool
}

// NewBadgeRepository creates a new badge repository
func NewBadgeRepository(db *pgxpool.Pool) *BadgeRepository {
	return &BadgeRepository{db: db}
}

// InsertBadgeUnlock records an unlock. Returns false when already unlocked.
func (r *BadgeRepository) InsertBadgeUnlock(ctx context.Context, unlock domain.BadgeUnlock) (bool, error) {
	query := `
		INSERT INTO badge_unlocks (user_id, badge_id, unlocked_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, badge_id) DO NOTHING`

	tag, err := r.db.Exec(ctx, query, unlock.UserID, unlock.BadgeID, unlock.UnlockedAt)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToInsertBadge, err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListBadgeUnlocks returns all unlocks for a user, oldest first
func (r *BadgeRepository) ListBadgeUnlocks(ctx context.Context, userID string) ([]domain.BadgeUnlock, error) {
	query := `
		SELECT user_id, badge_id, unlocked_at FROM badge_unlocks
		WHERE user_id = $1 ORDER BY unlocked_at ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListBadges, err)
	}
	defer rows.Close()

	var unlocks []domain.BadgeUnlock
	for rows.Next() {
		var unlock domain.BadgeUnlock
		if err := rows.Scan(&unlock.UserID, &unlock.BadgeID, &unlock.UnlockedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListBadges, err)
		}
		unlocks = append(unlocks, unlock)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListBadges, err)
	}
	return unlocks, nil
}

// RewardRepository implements the reward repository for PostgreSQL.
// The variant payload is stored as JSONB rather than one column per variant;
// the tagged-union shape is owned by the domain type.
type RewardRepository struct {
	db *pgxpool.Pool
}

// NewRewardRepository creates a new reward repository
func NewRewardRepository(db *pgxpool.Pool) *RewardRepository {
	return &RewardRepository{db: db}
}

// InsertReward stores the reward composed at bloom time. One per seed.
func (r *RewardRepository) InsertReward(ctx context.Context, reward *domain.RewardOutcome) error {
	payload, err := json.Marshal(reward)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalReward, err)
	}

	query := `
		INSERT INTO rewards (reward_id, seed_id, user_id, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = r.db.Exec(ctx, query, reward.ID, reward.SeedID, reward.UserID, payload, reward.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			// One reward per seed; the dispatcher resolves this by reading
			// the stored outcome
			return nil
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertReward, err)
	}
	return nil
}

// GetRewardBySeed retrieves the reward for a bloomed seed
func (r *RewardRepository) GetRewardBySeed(ctx context.Context, seedID string) (*domain.RewardOutcome, error) {
	query := `SELECT payload FROM rewards WHERE seed_id = $1`

	var payload []byte
	if err := r.db.QueryRow(ctx, query, seedID).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRewardNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetReward, err)
	}

	var reward domain.RewardOutcome
	if err := json.Unmarshal(payload, &reward); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeReward, err)
	}
	return &reward, nil
}
