package slot

import (
	"context"
	"fmt"

	"github.com/sharonsgarden/garden-api/internal/logger"
	"github.com/sharonsgarden/garden-api/internal/repository"
)

// Service recomputes and persists a user's slot allowance after bloom
// transitions. The persisted value is for display; planting checks always
// recompute from live counts.
type Service interface {
	// Recompute derives the allowance from the user's bloom count and
	// persists both to the user row. Returns the new allowance.
	Recompute(ctx context.Context, userID string) (int, error)
}

type service struct {
	seedRepo repository.Seed
	userRepo repository.User
}

// NewService creates a new slot service
func NewService(seedRepo repository.Seed, userRepo repository.User) Service {
	return &service{
		seedRepo: seedRepo,
		userRepo: userRepo,
	}
}

func (s *service) Recompute(ctx context.Context, userID string) (int, error) {
	bloomed, _, err := s.seedRepo.GetOwnerCounts(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count blooms: %w", err)
	}

	slots := For(bloomed)
	if err := s.userRepo.UpdateBloomStats(ctx, userID, bloomed, slots); err != nil {
		return 0, fmt.Errorf("failed to persist slot allowance: %w", err)
	}

	logger.FromContext(ctx).Debug("Slot allowance recomputed",
		"userID", userID, "bloomCount", bloomed, "slots", slots)

	return slots, nil
}
