package growth

// MaxConflictRetries bounds how many times a watering is re-attempted after
// the compare-and-swap guard misses. The row lock already serializes writers;
// the guard catching anything means an unexpected interleaving, so a small
// bound is enough before surfacing the conflict.
const MaxConflictRetries = 3

// Error message constants
const (
	ErrMsgPlantFailed      = "failed to plant seed: %w"
	ErrMsgWaterFailed      = "failed to water seed: %w"
	ErrMsgGetSeedFailed    = "failed to get seed: %w"
	ErrMsgListGardenFailed = "failed to list garden: %w"
	ErrMsgUpdateMetaFailed = "failed to update seed: %w"
	ErrMsgSlotCheckFailed  = "failed to check seed slots: %w"
	ErrMsgBeginTxFailed    = "failed to begin watering transaction: %w"
	ErrMsgCommitFailed     = "failed to commit watering transaction: %w"
)

// Log message constants
const (
	LogMsgSeedPlanted        = "Seed planted"
	LogMsgSeedWatered        = "Seed watered"
	LogMsgSeedBloomed        = "Seed bloomed"
	LogMsgWateringConflict   = "Watering conflict, retrying"
	LogMsgConflictsExhausted = "Watering conflict retries exhausted"
	LogMsgCapacityAnomaly    = "Unbloomed seed at or above bloom threshold"
	LogMsgRewardDispatchFail = "Bloom committed but reward dispatch failed"
	LogMsgSlotRecomputeFail  = "Bloom committed but slot recompute failed"
	LogMsgStreakCheckFail    = "Watering committed but streak evaluation failed"
)
