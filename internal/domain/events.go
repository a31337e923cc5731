package domain

import "github.com/google/uuid"

// Event type names shared by publishers and subscribers
const (
	EventTypeBoxGenerated = "lootbox.generated"
	EventTypeBoxOpened    = "lootbox.opened"
	EventTypeItemAcquired = "item.acquired"
	EventTypeItemEquipped = "item.equipped"
	EventTypeItemSold     = "item.sold"
	EventTypeLevelUp      = "player.levelup"
)

// BoxOpenedPayload is published when a loot box resolves into an item
type BoxOpenedPayload struct {
	BoxID     uuid.UUID `json:"box_id"`
	BoxRarity Rarity    `json:"box_rarity"`
	PlayerID  uuid.UUID `json:"player_id"`
	Timestamp int64     `json:"timestamp"`
}

// ItemAcquiredPayload is published after an item lands in a player's
// inventory; the leveling system consumes it to award XP.
type ItemAcquiredPayload struct {
	PlayerID   uuid.UUID `json:"player_id"`
	InstanceID uuid.UUID `json:"instance_id"`
	ItemName   string    `json:"item_name"`
	Rarity     Rarity    `json:"rarity"`
	Value      int       `json:"value"`
	Timestamp  int64     `json:"timestamp"`
}

// ItemEquippedPayload is published when the equipped slot changes
type ItemEquippedPayload struct {
	PlayerID   uuid.UUID `json:"player_id"`
	InstanceID uuid.UUID `json:"instance_id"`
	ItemName   string    `json:"item_name"`
	Rarity     Rarity    `json:"rarity"`
	Timestamp  int64     `json:"timestamp"`
}

// ItemSoldPayload is published after a sell completes
type ItemSoldPayload struct {
	PlayerID   uuid.UUID `json:"player_id"`
	InstanceID uuid.UUID `json:"instance_id"`
	ItemName   string    `json:"item_name"`
	Rarity     Rarity    `json:"rarity"`
	Value      int       `json:"value"`
	Timestamp  int64     `json:"timestamp"`
}

// LevelUpPayload is published once per leveling update that crossed at
// least one threshold; NewLevel is the final level after the cascade.
type LevelUpPayload struct {
	PlayerID   uuid.UUID `json:"player_id"`
	PlayerName string    `json:"player_name"`
	OldLevel   int       `json:"old_level"`
	NewLevel   int       `json:"new_level"`
	TotalXP    int64     `json:"total_xp"`
	Timestamp  int64     `json:"timestamp"`
}
