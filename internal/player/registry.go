package player

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/gamedesigns/lootcrate/internal/domain"
)

// Registry is the in-memory store of player state for the session.
// The lock covers player fields as well as the map: every gameplay
// write goes through WithPlayer, and readers outside the simulation
// goroutine take Snapshot copies instead of the live struct.
type Registry struct {
	mu      sync.RWMutex
	players map[uuid.UUID]*domain.Player
}

// NewRegistry creates an empty player registry
func NewRegistry() *Registry {
	return &Registry{
		players: make(map[uuid.UUID]*domain.Player),
	}
}

// Create registers a new player with the given name. The returned
// pointer is the live struct; callers hold it only during wiring,
// before the frame loop starts.
func (r *Registry) Create(name string) *domain.Player {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := &domain.Player{
		ID:        uuid.New(),
		Name:      name,
		Inventory: []domain.Item{},
		Level:     1,
	}
	r.players[p.ID] = p
	return p
}

// WithPlayer runs fn with exclusive access to the player's state
func (r *Registry) WithPlayer(id uuid.UUID, fn func(*domain.Player) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, id)
	}
	return fn(p)
}

// Snapshot returns a deep copy of the player, safe to read or mutate
// from any goroutine
func (r *Registry) Snapshot(id uuid.UUID) (*domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, id)
	}
	return p.Clone(), nil
}

// Len returns the number of registered players
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}
