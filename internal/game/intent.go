package game

import (
	"sync"

	"github.com/google/uuid"
)

// Intent is a queued player command. Intents are collected between frames
// and applied in arrival order by the intent system.
type Intent interface {
	intent()
}

// OpenBoxIntent opens a loot box. A nil BoxID means the oldest box in the
// pool is picked automatically.
type OpenBoxIntent struct {
	BoxID *uuid.UUID
}

// EquipIntent equips the inventory item with the given instance ID
type EquipIntent struct {
	InstanceID uuid.UUID
}

// SellIntent sells the inventory item with the given instance ID
type SellIntent struct {
	InstanceID uuid.UUID
}

func (OpenBoxIntent) intent() {}
func (EquipIntent) intent()   {}
func (SellIntent) intent()    {}

// IntentQueue buffers intents until the next frame drains them
type IntentQueue struct {
	mu      sync.Mutex
	pending []Intent
}

// NewIntentQueue creates an empty queue
func NewIntentQueue() *IntentQueue {
	return &IntentQueue{}
}

// Push appends an intent to the queue
func (q *IntentQueue) Push(in Intent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, in)
}

// Drain removes and returns all queued intents in arrival order
func (q *IntentQueue) Drain() []Intent {
	q.mu.Lock()
	defer q.mu.Unlock()
	drained := q.pending
	q.pending = nil
	return drained
}

// Len returns the number of queued intents
func (q *IntentQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
