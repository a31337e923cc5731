package domain

import (
	"time"

	"github.com/google/uuid"
)

// LootEntry is one candidate template inside a loot box's content pool
type LootEntry struct {
	TemplateName string `json:"template_name"`
	Rarity       Rarity `json:"rarity"`
}

// LootBox is an unopened box waiting in the pool.
// A box is opened at most once; the opening system removes it from the
// pool before drawing so a second open of the same ID fails.
type LootBox struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Rarity      Rarity      `json:"rarity"` // box rarity skews the item draw upward
	Contents    []LootEntry `json:"contents"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// ContentsForRarity returns the candidate entries of the given tier
func (b *LootBox) ContentsForRarity(r Rarity) []LootEntry {
	var out []LootEntry
	for _, e := range b.Contents {
		if e.Rarity == r {
			out = append(out, e)
		}
	}
	return out
}
