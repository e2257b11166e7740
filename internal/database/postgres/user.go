package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sharonsgarden/garden-api/internal/domain"
)

const userColumns = `user_id, username, bloom_count, seed_slots, created_at, updated_at`

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.BloomCount, &user.SeedSlots,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser retrieves a user by id
func (r *UserRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return user, nil
}

// EnsureUser upserts the user row, creating it on first contact
func (r *UserRepository) EnsureUser(ctx context.Context, userID, username string) (*domain.User, error) {
	query := `
		INSERT INTO users (user_id, username)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET
			username = CASE WHEN EXCLUDED.username <> '' THEN EXCLUDED.username ELSE users.username END,
			updated_at = NOW()
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, userID, username))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEnsureUser, err)
	}
	return user, nil
}

// UpdateBloomStats persists the derived bloom count and slot allowance
func (r *UserRepository) UpdateBloomStats(ctx context.Context, userID string, bloomCount, seedSlots int) error {
	query := `
		UPDATE users SET bloom_count = $2, seed_slots = $3, updated_at = NOW()
		WHERE user_id = $1`

	tag, err := r.db.Exec(ctx, query, userID, bloomCount, seedSlots)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateBloomStats, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
