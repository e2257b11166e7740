package ledger

// Cache key layout
const (
	// CacheKeySeparator joins actor, seed and day into one cache key
	CacheKeySeparator = ":"
)

// Error message constants
const (
	// ErrMsgCanWaterCheckFailed is returned when the ledger read fails
	ErrMsgCanWaterCheckFailed = "failed to check watering status: %w"

	// ErrMsgRecordWateringFailed is returned when creating a record fails
	ErrMsgRecordWateringFailed = "failed to record watering: %w"

	// ErrMsgBulkStatusFailed is returned when the batched read fails
	ErrMsgBulkStatusFailed = "failed to fetch bulk watering status: %w"

	// ErrMsgPurgeFailed is returned when the retention delete fails
	ErrMsgPurgeFailed = "failed to purge watering records: %w"
)

// Log message constants
const (
	// LogMsgDuplicateWatering is logged when an insert hits an existing record
	LogMsgDuplicateWatering = "Watering already recorded for day"

	// LogMsgLedgerPurged is logged after a retention sweep completes
	LogMsgLedgerPurged = "Watering ledger purged"
)
