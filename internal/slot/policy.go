// Package slot derives how many seeds a user may have growing concurrently.
package slot

// Slot policy constants
const (
	// BaseSlots is the allowance for a brand-new gardener
	BaseSlots = 1

	// MaxSlots caps the allowance regardless of bloom count
	MaxSlots = 5
)

// unlockThresholds lists the cumulative bloom counts at which an extra slot
// opens, in ascending order.
var unlockThresholds = []int{3, 5, 10, 20}

// For maps a cumulative bloom count to the allowed number of concurrently
// growing (unbloomed) seeds. Pure and deterministic.
func For(totalBloomCount int) int {
	slots := BaseSlots
	for _, threshold := range unlockThresholds {
		if totalBloomCount < threshold {
			break
		}
		slots++
	}
	if slots > MaxSlots {
		return MaxSlots
	}
	return slots
}

// NextUnlockAt returns the bloom count that opens the next slot, or -1 when
// the user is already at the cap.
func NextUnlockAt(totalBloomCount int) int {
	if For(totalBloomCount) >= MaxSlots {
		return -1
	}
	for _, threshold := range unlockThresholds {
		if totalBloomCount < threshold {
			return threshold
		}
	}
	return -1
}
