// Package memory provides a thread-safe in-memory implementation of the
// repository interfaces. It backs unit tests (including the concurrency
// tests) and the dev-mode server, mirroring the Postgres backend's semantics:
// composite-key uniqueness on watering records, row-lock serialization of the
// watering transaction, and a compare-and-swap guard on water_count.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sharonsgarden/garden-api/internal/domain"
	"github.com/sharonsgarden/garden-api/internal/repository"
)

const keySep = ":"

// Store holds all in-memory state. The zero value is not usable; call New.
type Store struct {
	mu sync.RWMutex
	// txMu serializes watering transactions the way the Postgres row lock
	// serializes them per seed (coarser here, which is strictly safer)
	txMu sync.Mutex

	seeds     map[string]domain.Seed
	waterings map[string]domain.WateringRecord // actor:seed:day
	badges    map[string]domain.BadgeUnlock    // user:badge
	rewards   map[string]domain.RewardOutcome  // by seed id
	users     map[string]domain.User

	// Error injection for failure-path tests. When set, the named operation
	// group returns the error instead of touching state.
	FailLedger error
	FailSeeds  error
	FailUsers  error
	FailTx     error
}

// New creates an empty store
func New() *Store {
	return &Store{
		seeds:     make(map[string]domain.Seed),
		waterings: make(map[string]domain.WateringRecord),
		badges:    make(map[string]domain.BadgeUnlock),
		rewards:   make(map[string]domain.RewardOutcome),
		users:     make(map[string]domain.User),
	}
}

func wateringKey(actorID, seedID, dayKey string) string {
	return actorID + keySep + seedID + keySep + dayKey
}

func badgeKey(userID, badgeID string) string {
	return userID + keySep + badgeID
}

// ---- repository.Seed ----

func (s *Store) CreateSeed(ctx context.Context, seed *domain.Seed) error {
	if s.FailSeeds != nil {
		return s.FailSeeds
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seeds[seed.ID] = *seed
	return nil
}

func (s *Store) GetSeed(ctx context.Context, seedID string) (*domain.Seed, error) {
	if s.FailSeeds != nil {
		return nil, s.FailSeeds
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	seed, ok := s.seeds[seedID]
	if !ok {
		return nil, domain.ErrSeedNotFound
	}
	return &seed, nil
}

func (s *Store) ListSeedsByOwner(ctx context.Context, ownerID string) ([]domain.Seed, error) {
	if s.FailSeeds != nil {
		return nil, s.FailSeeds
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Seed
	for _, seed := range s.seeds {
		if seed.OwnerID == ownerID {
			out = append(out, seed)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) GetOwnerCounts(ctx context.Context, ownerID string) (int, int, error) {
	if s.FailSeeds != nil {
		return 0, 0, s.FailSeeds
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var bloomed, unbloomed int
	for _, seed := range s.seeds {
		if seed.OwnerID != ownerID {
			continue
		}
		if seed.Bloomed {
			bloomed++
		} else {
			unbloomed++
		}
	}
	return bloomed, unbloomed, nil
}

func (s *Store) UpdateSeedMeta(ctx context.Context, seedID string, meta domain.SeedMeta) error {
	if s.FailSeeds != nil {
		return s.FailSeeds
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	seed, ok := s.seeds[seedID]
	if !ok {
		return domain.ErrSeedNotFound
	}
	if meta.ColorTag != nil {
		seed.ColorTag = *meta.ColorTag
	}
	if meta.DisplayName != nil {
		seed.DisplayName = *meta.DisplayName
	}
	if meta.Note != nil {
		seed.Note = *meta.Note
	}
	s.seeds[seedID] = seed
	return nil
}

// BeginTx starts a watering transaction. Transactions are mutually exclusive,
// which subsumes the per-row locking the Postgres backend relies on.
func (s *Store) BeginTx(ctx context.Context) (repository.SeedTx, error) {
	if s.FailTx != nil {
		return nil, s.FailTx
	}
	s.txMu.Lock()
	return &seedTx{store: s}, nil
}

// seedTx buffers writes until Commit so a rollback leaves no trace
type seedTx struct {
	store *Store
	done  bool

	pendingSeed     *domain.Seed
	pendingWatering *domain.WateringRecord
}

func (t *seedTx) Commit(ctx context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.done = true

	t.store.mu.Lock()
	if t.pendingWatering != nil {
		rec := *t.pendingWatering
		t.store.waterings[wateringKey(rec.ActorID, rec.SeedID, rec.DayKey)] = rec
	}
	if t.pendingSeed != nil {
		t.store.seeds[t.pendingSeed.ID] = *t.pendingSeed
	}
	t.store.mu.Unlock()

	t.store.txMu.Unlock()
	return nil
}

func (t *seedTx) Rollback(ctx context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.done = true
	t.pendingSeed = nil
	t.pendingWatering = nil
	t.store.txMu.Unlock()
	return nil
}

func (t *seedTx) GetSeedForUpdate(ctx context.Context, seedID string) (*domain.Seed, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	seed, ok := t.store.seeds[seedID]
	if !ok {
		return nil, domain.ErrSeedNotFound
	}
	return &seed, nil
}

func (t *seedTx) InsertWateringRecord(ctx context.Context, rec domain.WateringRecord) (bool, error) {
	t.store.mu.RLock()
	_, exists := t.store.waterings[wateringKey(rec.ActorID, rec.SeedID, rec.DayKey)]
	t.store.mu.RUnlock()
	if exists {
		return false, nil
	}
	t.pendingWatering = &rec
	return true, nil
}

func (t *seedTx) ApplyWatering(ctx context.Context, params repository.ApplyWateringParams) (bool, error) {
	t.store.mu.RLock()
	seed, ok := t.store.seeds[params.SeedID]
	t.store.mu.RUnlock()
	if !ok {
		return false, domain.ErrSeedNotFound
	}
	if seed.WaterCount != params.ExpectedWaterCount {
		return false, nil
	}

	seed.WaterCount++
	seed.Bloomed = params.Bloomed
	seed.BloomedFlower = params.BloomedFlower
	wateredAt := params.WateredAt
	seed.LastWateredAt = &wateredAt
	t.pendingSeed = &seed
	return true, nil
}

// ---- repository.Ledger ----

func (s *Store) HasWatered(ctx context.Context, actorID, seedID, dayKey string) (bool, error) {
	if s.FailLedger != nil {
		return false, s.FailLedger
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.waterings[wateringKey(actorID, seedID, dayKey)]
	return ok, nil
}

func (s *Store) InsertWatering(ctx context.Context, rec domain.WateringRecord) (bool, error) {
	if s.FailLedger != nil {
		return false, s.FailLedger
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := wateringKey(rec.ActorID, rec.SeedID, rec.DayKey)
	if _, ok := s.waterings[key]; ok {
		return false, nil
	}
	s.waterings[key] = rec
	return true, nil
}

func (s *Store) BulkWatered(ctx context.Context, actorID string, seedIDs []string, dayKey string) (map[string]bool, error) {
	if s.FailLedger != nil {
		return nil, s.FailLedger
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]bool, len(seedIDs))
	for _, seedID := range seedIDs {
		_, ok := s.waterings[wateringKey(actorID, seedID, dayKey)]
		out[seedID] = ok
	}
	return out, nil
}

func (s *Store) ListActorDayKeys(ctx context.Context, actorID, sinceDayKey string) ([]string, error) {
	if s.FailLedger != nil {
		return nil, s.FailLedger
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool)
	for _, rec := range s.waterings {
		if rec.ActorID == actorID && rec.DayKey >= sinceDayKey {
			seen[rec.DayKey] = true
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys, nil
}

func (s *Store) PurgeBefore(ctx context.Context, cutoffDayKey string) (int64, error) {
	if s.FailLedger != nil {
		return 0, s.FailLedger
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var deleted int64
	for key, rec := range s.waterings {
		if strings.Compare(rec.DayKey, cutoffDayKey) < 0 {
			delete(s.waterings, key)
			deleted++
		}
	}
	return deleted, nil
}

// ---- repository.Badge ----

func (s *Store) InsertBadgeUnlock(ctx context.Context, unlock domain.BadgeUnlock) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := badgeKey(unlock.UserID, unlock.BadgeID)
	if _, ok := s.badges[key]; ok {
		return false, nil
	}
	s.badges[key] = unlock
	return true, nil
}

func (s *Store) ListBadgeUnlocks(ctx context.Context, userID string) ([]domain.BadgeUnlock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.BadgeUnlock
	for _, b := range s.badges {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UnlockedAt.Before(out[j].UnlockedAt) })
	return out, nil
}

// ---- repository.Reward ----

func (s *Store) InsertReward(ctx context.Context, reward *domain.RewardOutcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rewards[reward.SeedID] = *reward
	return nil
}

func (s *Store) GetRewardBySeed(ctx context.Context, seedID string) (*domain.RewardOutcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reward, ok := s.rewards[seedID]
	if !ok {
		return nil, domain.ErrRewardNotFound
	}
	return &reward, nil
}

// ---- repository.User ----

func (s *Store) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if s.FailUsers != nil {
		return nil, s.FailUsers
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (s *Store) EnsureUser(ctx context.Context, userID, username string) (*domain.User, error) {
	if s.FailUsers != nil {
		return nil, s.FailUsers
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.users[userID]; ok {
		if username != "" && user.Username != username {
			user.Username = username
			user.UpdatedAt = time.Now()
			s.users[userID] = user
		}
		return &user, nil
	}
	now := time.Now()
	user := domain.User{
		ID:        userID,
		Username:  username,
		SeedSlots: 1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users[userID] = user
	return &user, nil
}

func (s *Store) UpdateBloomStats(ctx context.Context, userID string, bloomCount, seedSlots int) error {
	if s.FailUsers != nil {
		return s.FailUsers
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.BloomCount = bloomCount
	user.SeedSlots = seedSlots
	user.UpdatedAt = time.Now()
	s.users[userID] = user
	return nil
}
