package domain

// BloomThreshold is the number of accepted waterings required for a seed to bloom.
const BloomThreshold = 7

// Seed kinds are the emotion categories a seed is planted under.
// The kind is immutable after planting and selects the flower pool at bloom time.
const (
	SeedKindHope      SeedKind = "hope"
	SeedKindJoy       SeedKind = "joy"
	SeedKindGratitude SeedKind = "gratitude"
	SeedKindCourage   SeedKind = "courage"
	SeedKindCalm      SeedKind = "calm"
)

// AllSeedKinds lists every valid seed kind, in display order.
var AllSeedKinds = []SeedKind{
	SeedKindHope,
	SeedKindJoy,
	SeedKindGratitude,
	SeedKindCourage,
	SeedKindCalm,
}

// ValidSeedKind reports whether k is a known seed kind.
func ValidSeedKind(k SeedKind) bool {
	for _, kind := range AllSeedKinds {
		if k == kind {
			return true
		}
	}
	return false
}
