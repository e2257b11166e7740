package reward

// Rarity weights for flower selection, out of WeightTotal. Matches the pool
// tables in catalog.go: every kind's pool carries all four rarities.
const (
	WeightCommon    = 60
	WeightUncommon  = 25
	WeightRare      = 12
	WeightLegendary = 3
	WeightTotal     = WeightCommon + WeightUncommon + WeightRare + WeightLegendary
)

// Reward variant weights, out of VariantWeightTotal
const (
	VariantWeightQuote   = 40
	VariantWeightSticker = 25
	VariantWeightAudio   = 15
	VariantWeightGift    = 10
	VariantWeightBadge   = 10
	VariantWeightTotal   = VariantWeightQuote + VariantWeightSticker + VariantWeightAudio + VariantWeightGift + VariantWeightBadge
)

// Badge identifiers
const (
	BadgeFirstBloom        = "first_bloom"
	BadgeGreenThumb        = "green_thumb"
	BadgeGardenMaster      = "garden_master"
	BadgeLegendaryGardener = "legendary_gardener"
	BadgeDevotedWaterer    = "devoted_waterer"
)

// StreakDays is the consecutive-day watering run that unlocks BadgeDevotedWaterer
const StreakDays = 7

// Error message constants
const (
	ErrMsgComposeFailed     = "failed to compose bloom reward: %w"
	ErrMsgPersistFailed     = "failed to persist bloom reward: %w"
	ErrMsgBadgeCheckFailed  = "failed to evaluate badges: %w"
	ErrMsgStreakCheckFailed = "failed to evaluate watering streak: %w"
)

// Log message constants
const (
	LogMsgRewardDispatched = "Bloom reward dispatched"
	LogMsgBadgeUnlocked    = "Badge unlocked"
	LogMsgBadgeAlreadyHeld = "Badge already unlocked, skipping"
	LogMsgRewardAlreadySet = "Reward already exists for seed, returning existing"
)

// BloomMessageFormat renders the user-facing bloom line: kind, rarity, flower
const BloomMessageFormat = "Your %s seed bloomed into a %s %s %s"

