package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized    = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir = "failed to create dead-letter directory"
	LogMsgFailedCreatePublisher     = "failed to create resilient publisher"
	LogMsgNotifierRegistered        = "Garden notifier registered"
)

// Log messages for shutdown sequence
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgPublisherShutdownFailed    = "Event publisher shutdown failed"
	LogMsgServerStopped              = "Server stopped"
)
