package worker

import (
	"context"

	"github.com/sharonsgarden/garden-api/internal/dayclock"
	"github.com/sharonsgarden/garden-api/internal/event"
	"github.com/sharonsgarden/garden-api/internal/ledger"
	"github.com/sharonsgarden/garden-api/internal/logger"
	"github.com/sharonsgarden/garden-api/internal/metrics"
)

// RetentionWorker purges watering records older than the retention window.
// The per-day uniqueness guarantee only needs the current day's records, so
// old rows are operational history and can be swept. The retention floor in
// config keeps the sweep well clear of records that still gate waterings.
type RetentionWorker struct {
	ledgerSvc     ledger.Service
	publisher     *event.ResilientPublisher
	clock         dayclock.Clock
	retentionDays int
}

// NewRetentionWorker creates a new RetentionWorker
func NewRetentionWorker(ledgerSvc ledger.Service, publisher *event.ResilientPublisher, clock dayclock.Clock, retentionDays int) *RetentionWorker {
	return &RetentionWorker{
		ledgerSvc:     ledgerSvc,
		publisher:     publisher,
		clock:         clock,
		retentionDays: retentionDays,
	}
}

// Process runs one retention sweep. Implements the pool's Job interface so
// the scheduler can run it at the configured interval.
func (w *RetentionWorker) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	cutoff := dayclock.DaysAgo(w.clock, w.retentionDays)
	log.Info(LogMsgRetentionSweepStarting, "cutoff_day", cutoff, "retention_days", w.retentionDays)

	purged, err := w.ledgerSvc.PurgeBefore(ctx, cutoff)
	if err != nil {
		log.Error(LogMsgRetentionSweepFailed, "error", err, "cutoff_day", cutoff)
		return err
	}

	metrics.LedgerRecordsPurged.Add(float64(purged))
	if w.publisher != nil {
		w.publisher.PublishWithRetry(ctx, event.NewLedgerPurgedEvent(cutoff, purged))
	}

	log.Info(LogMsgRetentionSweepCompleted, "cutoff_day", cutoff, "records_purged", purged)
	return nil
}
