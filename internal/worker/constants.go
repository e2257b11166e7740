package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Retention Worker
// ============================================================================

// Log messages for retention sweep operations
const (
	LogMsgRetentionSweepStarting  = "Retention sweep starting"
	LogMsgRetentionSweepCompleted = "Retention sweep completed"
	LogMsgRetentionSweepFailed    = "Retention sweep failed"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
