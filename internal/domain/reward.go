package domain

import "time"

// Rarity grades a bloomed flower.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// FlowerSpecies is one entry in a kind's bloom pool.
type FlowerSpecies struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Emoji       string `json:"emoji"`
	Rarity      Rarity `json:"rarity"`
}

// RewardKind discriminates the RewardOutcome union.
type RewardKind string

const (
	RewardKindQuote   RewardKind = "quote"
	RewardKindSticker RewardKind = "sticker"
	RewardKindAudio   RewardKind = "audio"
	RewardKindGift    RewardKind = "gift"
	RewardKindBadge   RewardKind = "badge"
)

// QuoteReward carries an encouragement quote.
type QuoteReward struct {
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
}

// StickerReward carries a collectible sticker reference.
type StickerReward struct {
	StickerID string `json:"sticker_id"`
}

// AudioReward carries a playable audio message reference.
type AudioReward struct {
	TrackID string `json:"track_id"`
}

// GiftReward carries a redeemable gift link.
type GiftReward struct {
	Link string `json:"link"`
}

// BadgeReward carries the badge granted alongside the bloom.
type BadgeReward struct {
	BadgeID string `json:"badge_id"`
}

// RewardOutcome is the bloom payload persisted per seed. Exactly one variant
// field matching Kind is set; the rest are nil.
type RewardOutcome struct {
	ID        string         `json:"id"`
	SeedID    string         `json:"seed_id"`
	UserID    string         `json:"user_id"`
	Flower    FlowerSpecies  `json:"flower"`
	Kind      RewardKind     `json:"kind"`
	Message   string         `json:"message"`
	Quote     *QuoteReward   `json:"quote,omitempty"`
	Sticker   *StickerReward `json:"sticker,omitempty"`
	Audio     *AudioReward   `json:"audio,omitempty"`
	Gift      *GiftReward    `json:"gift,omitempty"`
	Badge     *BadgeReward   `json:"badge,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
