package domain

import "github.com/google/uuid"

// Player holds all per-player gameplay state for the session.
// The equipped slot is a weak reference into the inventory by instance ID;
// it never owns the item and is cleared when the referenced item leaves.
type Player struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Inventory []Item     `json:"inventory"`
	Equipped  *uuid.UUID `json:"equipped,omitempty"`
	Currency  int        `json:"currency"`
	XP        int64      `json:"xp"`
	Level     int        `json:"level"`
}

// FindItem returns the index of the inventory item with the given instance ID,
// or -1 if the player does not hold it.
func (p *Player) FindItem(instanceID uuid.UUID) int {
	for i := range p.Inventory {
		if p.Inventory[i].InstanceID == instanceID {
			return i
		}
	}
	return -1
}

// IsEquipped reports whether the given instance is the currently equipped item
func (p *Player) IsEquipped(instanceID uuid.UUID) bool {
	return p.Equipped != nil && *p.Equipped == instanceID
}

// Clone returns a deep copy of the player. Readers outside the
// simulation goroutine get clones, never the live struct.
func (p *Player) Clone() *Player {
	c := *p
	c.Inventory = make([]Item, len(p.Inventory))
	copy(c.Inventory, p.Inventory)
	if p.Equipped != nil {
		equipped := *p.Equipped
		c.Equipped = &equipped
	}
	return &c
}
