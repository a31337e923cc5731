package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gamedesigns/lootcrate/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Event types consumed by the frame systems
const (
	BoxOpened    = Type(domain.EventTypeBoxOpened)
	ItemAcquired = Type(domain.EventTypeItemAcquired)
	ItemEquipped = Type(domain.EventTypeItemEquipped)
	ItemSold     = Type(domain.EventTypeItemSold)
	LevelUp      = Type(domain.EventTypeLevelUp)
)

// Type-safe event constructors

// NewBoxOpenedEvent creates a box opened event
func NewBoxOpenedEvent(boxID uuid.UUID, boxRarity domain.Rarity, playerID uuid.UUID) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BoxOpened,
		Payload: domain.BoxOpenedPayload{
			BoxID:     boxID,
			BoxRarity: boxRarity,
			PlayerID:  playerID,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemAcquiredEvent creates an item acquired event with type-safe payload
func NewItemAcquiredEvent(playerID uuid.UUID, item domain.Item) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemAcquired,
		Payload: domain.ItemAcquiredPayload{
			PlayerID:   playerID,
			InstanceID: item.InstanceID,
			ItemName:   item.InternalName,
			Rarity:     item.Rarity,
			Value:      item.Value,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewItemEquippedEvent creates an item equipped event
func NewItemEquippedEvent(playerID uuid.UUID, item domain.Item) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemEquipped,
		Payload: domain.ItemEquippedPayload{
			PlayerID:   playerID,
			InstanceID: item.InstanceID,
			ItemName:   item.InternalName,
			Rarity:     item.Rarity,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewItemSoldEvent creates an item sold event
func NewItemSoldEvent(playerID uuid.UUID, item domain.Item) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemSold,
		Payload: domain.ItemSoldPayload{
			PlayerID:   playerID,
			InstanceID: item.InstanceID,
			ItemName:   item.InternalName,
			Rarity:     item.Rarity,
			Value:      item.Value,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewLevelUpEvent creates a level up event carrying the final level of the cascade
func NewLevelUpEvent(playerID uuid.UUID, playerName string, oldLevel, newLevel int, totalXP int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LevelUp,
		Payload: domain.LevelUpPayload{
			PlayerID:   playerID,
			PlayerName: playerName,
			OldLevel:   oldLevel,
			NewLevel:   newLevel,
			TotalXP:    totalXP,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus.
// Handlers run synchronously in subscription order, so a publish made
// inside a frame completes all downstream updates before it returns.
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
