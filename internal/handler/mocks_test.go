package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sharonsgarden/garden-api/internal/domain"
)

// MockGrowthService is a hand-rolled testify mock for the growth service
type MockGrowthService struct {
	mock.Mock
}

func (m *MockGrowthService) PlantSeed(ctx context.Context, ownerID, username string, kind domain.SeedKind, meta domain.SeedMeta) (*domain.Seed, error) {
	args := m.Called(ctx, ownerID, username, kind, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seed), args.Error(1)
}

func (m *MockGrowthService) WaterSeed(ctx context.Context, actorID, seedID string) (*domain.WateringResult, error) {
	args := m.Called(ctx, actorID, seedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WateringResult), args.Error(1)
}

func (m *MockGrowthService) GetSeed(ctx context.Context, seedID string) (*domain.Seed, error) {
	args := m.Called(ctx, seedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seed), args.Error(1)
}

func (m *MockGrowthService) ListGarden(ctx context.Context, ownerID string) (*domain.GardenSummary, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GardenSummary), args.Error(1)
}

func (m *MockGrowthService) UpdateSeedMeta(ctx context.Context, actorID, seedID string, meta domain.SeedMeta) (*domain.Seed, error) {
	args := m.Called(ctx, actorID, seedID, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seed), args.Error(1)
}

// MockLedgerService is a hand-rolled testify mock for the ledger service
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CanWaterToday(ctx context.Context, actorID, seedID string) (bool, error) {
	args := m.Called(ctx, actorID, seedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerService) RecordWatering(ctx context.Context, actorID, seedID, dayKey string) (*domain.WateringRecord, error) {
	args := m.Called(ctx, actorID, seedID, dayKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WateringRecord), args.Error(1)
}

func (m *MockLedgerService) BulkStatus(ctx context.Context, actorID string, seedIDs []string) (map[string]bool, error) {
	args := m.Called(ctx, actorID, seedIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockLedgerService) Today() string {
	return m.Called().String(0)
}

func (m *MockLedgerService) MarkWatered(actorID, seedID, dayKey string) {
	m.Called(actorID, seedID, dayKey)
}

func (m *MockLedgerService) WateredDayKeys(ctx context.Context, actorID, sinceDayKey string) ([]string, error) {
	args := m.Called(ctx, actorID, sinceDayKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLedgerService) PurgeBefore(ctx context.Context, cutoffDayKey string) (int64, error) {
	args := m.Called(ctx, cutoffDayKey)
	return args.Get(0).(int64), args.Error(1)
}

// MockRewardService is a hand-rolled testify mock for the reward service
type MockRewardService struct {
	mock.Mock
}

func (m *MockRewardService) PickFlower(kind domain.SeedKind) domain.FlowerSpecies {
	args := m.Called(kind)
	return args.Get(0).(domain.FlowerSpecies)
}

func (m *MockRewardService) Dispatch(ctx context.Context, seed *domain.Seed, actorID string, flower domain.FlowerSpecies) (*domain.RewardOutcome, error) {
	args := m.Called(ctx, seed, actorID, flower)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RewardOutcome), args.Error(1)
}

func (m *MockRewardService) GetBySeed(ctx context.Context, seedID string) (*domain.RewardOutcome, error) {
	args := m.Called(ctx, seedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RewardOutcome), args.Error(1)
}

func (m *MockRewardService) EvaluateWateringStreak(ctx context.Context, actorID string) error {
	return m.Called(ctx, actorID).Error(0)
}

func (m *MockRewardService) ListBadges(ctx context.Context, userID string) ([]domain.BadgeUnlock, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BadgeUnlock), args.Error(1)
}
