package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Seed errors
	ErrMsgSeedNotFound = "seed not found"
	ErrMsgNotSeedOwner = "not the seed owner"
	ErrMsgInvalidKind  = "invalid seed kind"

	// Watering errors
	ErrMsgAlreadyWateredToday = "already watered today"
	ErrMsgAlreadyBloomed      = "seed has already bloomed"
	ErrMsgAtCapacity          = "seed is at water capacity"

	// Slot errors
	ErrMsgSlotLimitReached = "seed slot limit reached"

	// Ledger/storage errors
	ErrMsgLedgerUnavailable = "watering ledger unavailable"

	// Concurrency errors
	ErrMsgConcurrentConflict = "concurrent update conflict"

	// Reward errors
	ErrMsgRewardNotFound = "reward not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Seed errors
	ErrSeedNotFound = errors.New(ErrMsgSeedNotFound)
	ErrNotSeedOwner = errors.New(ErrMsgNotSeedOwner)
	ErrInvalidKind  = errors.New(ErrMsgInvalidKind)

	// Watering errors
	ErrAlreadyWateredToday = errors.New(ErrMsgAlreadyWateredToday)
	ErrAlreadyBloomed      = errors.New(ErrMsgAlreadyBloomed)
	ErrAtCapacity          = errors.New(ErrMsgAtCapacity)

	// Slot errors
	ErrSlotLimitReached = errors.New(ErrMsgSlotLimitReached)

	// Ledger/storage errors
	ErrLedgerUnavailable = errors.New(ErrMsgLedgerUnavailable)

	// Concurrency errors. Retried transparently by the growth engine; only
	// surfaced when retries are exhausted.
	ErrConcurrentConflict = errors.New(ErrMsgConcurrentConflict)

	// Reward errors
	ErrRewardNotFound = errors.New(ErrMsgRewardNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
