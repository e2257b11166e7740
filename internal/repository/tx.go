package repository

import (
	"context"
	"errors"

	"github.com/sharonsgarden/garden-api/internal/logger"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// ErrTxClosed is returned by Rollback after a successful Commit.
// Backends translate their driver-specific sentinel to this one.
var ErrTxClosed = errors.New("transaction already closed")

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
