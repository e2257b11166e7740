package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sharonsgarden/garden-api/internal/database/postgres"
	"github.com/sharonsgarden/garden-api/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Seed   repository.Seed
	User   repository.User
	Ledger repository.Ledger
	Badge  repository.Badge
	Reward repository.Reward
}

// InitializeRepositories creates all repository implementations over the pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Seed:   postgres.NewSeedRepository(dbPool),
		User:   postgres.NewUserRepository(dbPool),
		Ledger: postgres.NewLedgerRepository(dbPool),
		Badge:  postgres.NewBadgeRepository(dbPool),
		Reward: postgres.NewRewardRepository(dbPool),
	}
}
