package halloffame

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/gamedesigns/lootcrate/internal/domain"
)

// Board is the hall of fame: one entry per player, kept sorted by level
// descending with total XP as the tiebreak.
type Board struct {
	mu      sync.RWMutex
	entries []domain.HallOfFameEntry
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{}
}

// Upsert records the player's standing, replacing any previous entry for
// the same player, and restores the sort order.
func (b *Board) Upsert(entry domain.HallOfFameEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	replaced := false
	for i := range b.entries {
		if b.entries[i].PlayerID == entry.PlayerID {
			b.entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		b.entries = append(b.entries, entry)
	}

	// Stable sort keeps earlier entrants ahead on full ties
	sort.SliceStable(b.entries, func(i, j int) bool {
		if b.entries[i].Level != b.entries[j].Level {
			return b.entries[i].Level > b.entries[j].Level
		}
		return b.entries[i].Score > b.entries[j].Score
	})
}

// Top returns the best n entries in rank order
func (b *Board) Top(n int) []domain.HallOfFameEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if n > len(b.entries) {
		n = len(b.entries)
	}
	out := make([]domain.HallOfFameEntry, n)
	copy(out, b.entries[:n])
	return out
}

// Entry returns the recorded standing for the given player
func (b *Board) Entry(playerID uuid.UUID) (domain.HallOfFameEntry, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for i := range b.entries {
		if b.entries[i].PlayerID == playerID {
			return b.entries[i], true
		}
	}
	return domain.HallOfFameEntry{}, false
}

// Len returns the number of players on the board
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}
