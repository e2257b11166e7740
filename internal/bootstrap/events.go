package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sharonsgarden/garden-api/internal/config"
	"github.com/sharonsgarden/garden-api/internal/event"
	"github.com/sharonsgarden/garden-api/internal/notify"
)

// InitializeEventSystem creates and configures the event bus and resilient
// publisher, ensuring the dead-letter directory exists first.
// Returns the event bus, resilient publisher, and any error encountered.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	deadLetterPath := cfg.DeadLetterPath
	if dir := filepath.Dir(deadLetterPath); dir != "." {
		if err := os.MkdirAll(dir, DirPermission); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
		}
	}

	resilientPublisher, err := event.NewResilientPublisher(eventBus, EventDefaultMaxRetries, EventDefaultRetryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreatePublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, resilientPublisher, nil
}

// RegisterEventHandlers sets up the milestone notifier on the bus. Handler
// failures are absorbed by the bus and publisher; they never reach the
// watering path.
func RegisterEventHandlers(eventBus event.Bus) {
	notify.New().Register(eventBus)
	slog.Info(LogMsgNotifierRegistered)
}
