package lootbox

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/gamedesigns/lootcrate/internal/domain"
	"github.com/gamedesigns/lootcrate/internal/metrics"
)

// Pool is the process-wide registry of unopened loot boxes.
// Boxes expire if left unopened past the TTL; capacity is enforced by
// Add so the expirable store never evicts an unopened box by size.
type Pool struct {
	boxes    *expirable.LRU[uuid.UUID, *domain.LootBox]
	capacity int

	// removing marks the IDs of in-flight explicit removals so the
	// eviction callback, which also fires for TTL expiries from the
	// store's background reaper, can attribute each eviction to the
	// right cause.
	mu       sync.Mutex
	removing map[uuid.UUID]bool
}

// NewPool creates a pool bounded to capacity with the given box lifetime
func NewPool(capacity int, ttl time.Duration) *Pool {
	p := &Pool{
		capacity: capacity,
		removing: make(map[uuid.UUID]bool),
	}
	p.boxes = expirable.NewLRU[uuid.UUID, *domain.LootBox](capacity, p.onEvict, ttl)
	return p
}

// onEvict runs under the store's lock, so it must not call back into it
func (p *Pool) onEvict(id uuid.UUID, _ *domain.LootBox) {
	p.mu.Lock()
	explicit := p.removing[id]
	delete(p.removing, id)
	p.mu.Unlock()

	if explicit {
		return
	}
	metrics.BoxesExpired.Inc()
	metrics.PoolSize.Dec()
}

// Add inserts a box. Returns domain.ErrPoolAtCapacity when full; the
// caller treats that as an informational no-op, not a failure.
func (p *Pool) Add(box *domain.LootBox) error {
	if p.boxes.Len() >= p.capacity {
		return domain.ErrPoolAtCapacity
	}
	p.boxes.Add(box.ID, box)
	metrics.PoolSize.Set(float64(p.boxes.Len()))
	return nil
}

// Get returns the box with the given ID without removing it
func (p *Pool) Get(id uuid.UUID) (*domain.LootBox, bool) {
	return p.boxes.Peek(id)
}

// Remove takes the box out of the pool. Removal happens before the
// opening draw so a box can never be opened twice.
func (p *Pool) Remove(id uuid.UUID) (*domain.LootBox, bool) {
	box, ok := p.boxes.Peek(id)
	if !ok {
		return nil, false
	}

	p.mu.Lock()
	p.removing[id] = true
	p.mu.Unlock()

	if !p.boxes.Remove(id) {
		// The reaper expired the box between Peek and Remove
		p.mu.Lock()
		delete(p.removing, id)
		p.mu.Unlock()
		return nil, false
	}
	metrics.PoolSize.Set(float64(p.boxes.Len()))
	return box, true
}

// Oldest returns the longest-waiting box without removing it
func (p *Pool) Oldest() (*domain.LootBox, bool) {
	keys := p.boxes.Keys()
	if len(keys) == 0 {
		return nil, false
	}
	return p.boxes.Peek(keys[0])
}

// IDs returns the IDs of all unopened boxes, oldest first
func (p *Pool) IDs() []uuid.UUID {
	return p.boxes.Keys()
}

// Len returns the number of unopened boxes
func (p *Pool) Len() int {
	return p.boxes.Len()
}

// Capacity returns the configured maximum pool size
func (p *Pool) Capacity() int {
	return p.capacity
}

// Full reports whether generation would be a no-op
func (p *Pool) Full() bool {
	return p.boxes.Len() >= p.capacity
}
