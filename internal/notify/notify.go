// Package notify delivers in-app notifications for garden milestones. The
// current sink is the structured log; delivery failures are logged and never
// propagate back into the watering path.
package notify

import (
	"context"

	"github.com/sharonsgarden/garden-api/internal/event"
	"github.com/sharonsgarden/garden-api/internal/logger"
)

// Log message constants
const (
	LogMsgSeedBloomedNotice   = "🌸 Seed bloomed"
	LogMsgBadgeUnlockedNotice = "🏅 Badge unlocked"
	LogMsgUnexpectedPayload   = "Unexpected event payload type"
)

// Notifier subscribes to garden milestone events
type Notifier struct{}

// New creates a new Notifier
func New() *Notifier {
	return &Notifier{}
}

// Register subscribes the notifier's handlers on the bus
func (n *Notifier) Register(bus event.Bus) {
	bus.Subscribe(event.SeedBloomed, n.handleSeedBloomed)
	bus.Subscribe(event.BadgeUnlocked, n.handleBadgeUnlocked)
}

func (n *Notifier) handleSeedBloomed(ctx context.Context, e event.Event) error {
	log := logger.FromContext(ctx)

	payload, ok := e.Payload.(event.SeedBloomedPayloadV1)
	if !ok {
		log.Warn(LogMsgUnexpectedPayload, "event_type", e.Type)
		return nil
	}

	log.Info(LogMsgSeedBloomedNotice,
		"owner_id", payload.OwnerID,
		"seed_id", payload.SeedID,
		"flower", payload.Flower,
		"rarity", payload.Rarity,
		"reward_kind", payload.RewardKind,
		"watered_by", payload.WateredBy)
	return nil
}

func (n *Notifier) handleBadgeUnlocked(ctx context.Context, e event.Event) error {
	log := logger.FromContext(ctx)

	payload, ok := e.Payload.(event.BadgeUnlockedPayloadV1)
	if !ok {
		log.Warn(LogMsgUnexpectedPayload, "event_type", e.Type)
		return nil
	}

	log.Info(LogMsgBadgeUnlockedNotice,
		"user_id", payload.UserID,
		"badge_id", payload.BadgeID)
	return nil
}
