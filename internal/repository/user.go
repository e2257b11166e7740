package repository

import (
	"context"

	"github.com/sharonsgarden/garden-api/internal/domain"
)

// User handles user persistence
type User interface {
	// GetUser retrieves a user by id
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// EnsureUser upserts the user row, creating it on first contact
	EnsureUser(ctx context.Context, userID, username string) (*domain.User, error)

	// UpdateBloomStats persists the derived bloom count and slot allowance.
	// Display values only - the authoritative slot check recomputes from the
	// seeds table.
	UpdateBloomStats(ctx context.Context, userID string, bloomCount, seedSlots int) error
}
