package reward

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sharonsgarden/garden-api/internal/domain"
)

var titleCaser = cases.Title(language.English)

// flowerEntry is a catalog row before display-name expansion
type flowerEntry struct {
	name   string
	emoji  string
	rarity domain.Rarity
}

// flowerPools maps each seed kind to its bloom pool. Every pool carries all
// four rarities so the weighted draw in pickRarity always has a candidate.
var flowerPools = map[domain.SeedKind][]flowerEntry{
	domain.SeedKindHope: {
		{name: "sunrise tulip", emoji: "🌷", rarity: domain.RarityCommon},
		{name: "morning glory", emoji: "🌼", rarity: domain.RarityUncommon},
		{name: "dawn lotus", emoji: "🪷", rarity: domain.RarityRare},
		{name: "aurora lily", emoji: "✨", rarity: domain.RarityLegendary},
	},
	domain.SeedKindJoy: {
		{name: "sunflower", emoji: "🌻", rarity: domain.RarityCommon},
		{name: "buttercup", emoji: "🌼", rarity: domain.RarityUncommon},
		{name: "dancing daisy", emoji: "🌸", rarity: domain.RarityRare},
		{name: "golden marigold", emoji: "🌟", rarity: domain.RarityLegendary},
	},
	domain.SeedKindGratitude: {
		{name: "pink carnation", emoji: "🌸", rarity: domain.RarityCommon},
		{name: "sweet pea", emoji: "💮", rarity: domain.RarityUncommon},
		{name: "bellflower", emoji: "🔔", rarity: domain.RarityRare},
		{name: "eternal rose", emoji: "🌹", rarity: domain.RarityLegendary},
	},
	domain.SeedKindCourage: {
		{name: "red poppy", emoji: "🌺", rarity: domain.RarityCommon},
		{name: "tiger lily", emoji: "🐯", rarity: domain.RarityUncommon},
		{name: "mountain edelweiss", emoji: "🏔️", rarity: domain.RarityRare},
		{name: "phoenix protea", emoji: "🔥", rarity: domain.RarityLegendary},
	},
	domain.SeedKindCalm: {
		{name: "lavender sprig", emoji: "💜", rarity: domain.RarityCommon},
		{name: "white chamomile", emoji: "🤍", rarity: domain.RarityUncommon},
		{name: "moonflower", emoji: "🌙", rarity: domain.RarityRare},
		{name: "still water lily", emoji: "🪷", rarity: domain.RarityLegendary},
	},
}

// species converts a catalog row to the domain type, deriving the title-cased
// display name from the catalog name.
func (e flowerEntry) species() domain.FlowerSpecies {
	return domain.FlowerSpecies{
		Name:        e.name,
		DisplayName: titleCaser.String(e.name),
		Emoji:       e.emoji,
		Rarity:      e.rarity,
	}
}

// PoolFor returns the full bloom pool for a kind, for catalog endpoints and
// tests. Unknown kinds get the hope pool rather than an empty draw.
func PoolFor(kind domain.SeedKind) []domain.FlowerSpecies {
	entries, ok := flowerPools[kind]
	if !ok {
		entries = flowerPools[domain.SeedKindHope]
	}
	out := make([]domain.FlowerSpecies, len(entries))
	for i, e := range entries {
		out[i] = e.species()
	}
	return out
}

// pickRarity maps a roll in [0, WeightTotal) to a rarity tier
func pickRarity(roll int) domain.Rarity {
	switch {
	case roll < WeightCommon:
		return domain.RarityCommon
	case roll < WeightCommon+WeightUncommon:
		return domain.RarityUncommon
	case roll < WeightCommon+WeightUncommon+WeightRare:
		return domain.RarityRare
	default:
		return domain.RarityLegendary
	}
}

// pickVariant maps a roll in [0, VariantWeightTotal) to a reward kind
func pickVariant(roll int) domain.RewardKind {
	switch {
	case roll < VariantWeightQuote:
		return domain.RewardKindQuote
	case roll < VariantWeightQuote+VariantWeightSticker:
		return domain.RewardKindSticker
	case roll < VariantWeightQuote+VariantWeightSticker+VariantWeightAudio:
		return domain.RewardKindAudio
	case roll < VariantWeightQuote+VariantWeightSticker+VariantWeightAudio+VariantWeightGift:
		return domain.RewardKindGift
	default:
		return domain.RewardKindBadge
	}
}

// quotes is the encouragement pool for quote rewards
var quotes = []domain.QuoteReward{
	{Text: "No rain, no flowers.", Author: "proverb"},
	{Text: "Where flowers bloom, so does hope.", Author: "Lady Bird Johnson"},
	{Text: "Little by little, a little becomes a lot.", Author: "Tanzanian proverb"},
	{Text: "A garden grows one day of care at a time."},
	{Text: "Every bloom remembers the days it was watered."},
	{Text: "The glory of gardening: hands in the dirt, head in the sun, heart with nature.", Author: "Alfred Austin"},
}

// stickerIDs and trackIDs are the collectible pools, keyed into by the draw
var stickerIDs = []string{
	"sticker_watering_can",
	"sticker_garden_gnome",
	"sticker_butterfly",
	"sticker_rainbow_sprout",
	"sticker_happy_pot",
}

var trackIDs = []string{
	"track_morning_birds",
	"track_gentle_rain",
	"track_garden_breeze",
	"track_wind_chimes",
}

var giftLinks = []string{
	"https://garden.sharons.dev/gifts/pressed-flower",
	"https://garden.sharons.dev/gifts/seed-packet",
	"https://garden.sharons.dev/gifts/garden-postcard",
}
