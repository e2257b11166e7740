package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin watering transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Seed Operations
const (
	ErrMsgFailedToInsertSeed     = "failed to insert seed"
	ErrMsgFailedToGetSeed        = "failed to get seed"
	ErrMsgFailedToListSeeds      = "failed to list seeds"
	ErrMsgFailedToCountSeeds     = "failed to count seeds"
	ErrMsgFailedToUpdateSeedMeta = "failed to update seed"
	ErrMsgFailedToApplyWatering  = "failed to apply watering"
	ErrMsgFailedToLockSeed       = "failed to get seed for update"
)

// Error Messages - Watering Ledger Operations
const (
	ErrMsgFailedToCheckWatering  = "failed to check watering record"
	ErrMsgFailedToInsertWatering = "failed to insert watering record"
	ErrMsgFailedToBulkCheck      = "failed to bulk check watering records"
	ErrMsgFailedToListDayKeys    = "failed to list watering day keys"
	ErrMsgFailedToPurgeWaterings = "failed to purge watering records"
)

// Error Messages - Badge and Reward Operations
const (
	ErrMsgFailedToInsertBadge   = "failed to insert badge unlock"
	ErrMsgFailedToListBadges    = "failed to list badge unlocks"
	ErrMsgFailedToInsertReward  = "failed to insert reward"
	ErrMsgFailedToGetReward     = "failed to get reward"
	ErrMsgFailedToMarshalReward = "failed to marshal reward payload"
	ErrMsgFailedToDecodeReward  = "failed to decode reward payload"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToGetUser          = "failed to get user"
	ErrMsgFailedToEnsureUser       = "failed to ensure user"
	ErrMsgFailedToUpdateBloomStats = "failed to update bloom stats"
)
