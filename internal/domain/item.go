package domain

import "github.com/google/uuid"

// Rarity represents the rarity tier of an item or loot box
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
)

// rarityOrder maps each tier to its position in the total order (Common < Legendary)
var rarityOrder = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
}

// Rarities lists all tiers in ascending order
var Rarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
}

// Ordinal returns the tier's position in the total order.
// Unknown tiers sort below Common.
func (r Rarity) Ordinal() int {
	if ord, ok := rarityOrder[r]; ok {
		return ord
	}
	return -1
}

// Less reports whether r is a lower tier than other
func (r Rarity) Less(other Rarity) bool {
	return r.Ordinal() < other.Ordinal()
}

// Valid reports whether r is a known tier
func (r Rarity) Valid() bool {
	_, ok := rarityOrder[r]
	return ok
}

// ItemTemplate describes a kind of item that loot boxes can produce.
// Templates are loaded from the catalog at startup and never mutated.
type ItemTemplate struct {
	InternalName string `json:"internal_name"`
	DisplayName  string `json:"display_name"`
	Description  string `json:"description"`
	Rarity       Rarity `json:"rarity"`
	BaseValue    int    `json:"base_value"`
}

// Item is a concrete item instance produced by opening a loot box.
// Instances are immutable once created; ownership moves with the struct.
type Item struct {
	InstanceID   uuid.UUID `json:"instance_id"`
	InternalName string    `json:"internal_name"`
	DisplayName  string    `json:"display_name"`
	Rarity       Rarity    `json:"rarity"`
	BaseValue    int       `json:"base_value"`
	Value        int       `json:"value"` // base value scaled by the rarity multiplier
}
