package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Header / parameter error messages
	ErrMsgMissingActorHeader = "Missing X-Actor-ID header"
	ErrMsgMissingQueryParam  = "Missing %s query parameter"
	ErrMsgTooManySeedIDs     = "Too many seed ids (max %d)"

	// Seed operation error messages
	ErrMsgPlantSeedFailed  = "Failed to plant seed"
	ErrMsgGetSeedFailed    = "Failed to get seed"
	ErrMsgListGardenFailed = "Failed to list garden"
	ErrMsgUpdateSeedFailed = "Failed to update seed"

	// Watering error messages
	ErrMsgWaterSeedFailed = "Failed to water seed"
	ErrMsgGetStatusFailed = "Failed to get watering status"

	// Reward/badge error messages
	ErrMsgGetRewardFailed  = "Failed to get reward"
	ErrMsgListBadgesFailed = "Failed to list badges"
)

// User-facing error messages mapped from domain errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgUserNotFoundError   = "User not found"
	ErrMsgSeedNotFoundError   = "Seed not found"
	ErrMsgNotSeedOwnerError   = "Only the seed's owner can do that"
	ErrMsgInvalidKindError    = "Unknown seed kind"
	ErrMsgAlreadyWateredError = "You already watered this seed today. Come back tomorrow!"
	ErrMsgAlreadyBloomedError = "This seed has already bloomed"
	ErrMsgAtCapacityError     = "This seed cannot take any more water"
	ErrMsgSlotLimitError      = "No free seed slots. Bloom a seed to grow more at once."
	ErrMsgLedgerDownError     = "Watering is temporarily unavailable. Please try again later."
	ErrMsgConflictError       = "The garden is busy right now. Please try again."
	ErrMsgRewardNotFoundError = "No reward recorded for this seed"
)

// Success messages for API responses
const (
	MsgSeedPlantedSuccess = "Seed planted successfully"
	MsgSeedWateredSuccess = "Seed watered successfully"
	MsgSeedBloomedSuccess = "Your seed bloomed!"
)
