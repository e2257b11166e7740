package repository

import (
	"context"

	"github.com/sharonsgarden/garden-api/internal/domain"
)

// Badge handles badge unlock persistence
type Badge interface {
	// InsertBadgeUnlock records an unlock. Returns false when the
	// (user, badge) pair was already unlocked - a no-op, not an error.
	InsertBadgeUnlock(ctx context.Context, unlock domain.BadgeUnlock) (bool, error)

	// ListBadgeUnlocks returns all unlocks for a user, oldest first
	ListBadgeUnlocks(ctx context.Context, userID string) ([]domain.BadgeUnlock, error)
}

// Reward handles bloom reward persistence
type Reward interface {
	// InsertReward stores the reward composed at bloom time. One per seed.
	InsertReward(ctx context.Context, reward *domain.RewardOutcome) error

	// GetRewardBySeed retrieves the reward for a bloomed seed
	GetRewardBySeed(ctx context.Context, seedID string) (*domain.RewardOutcome, error)
}
