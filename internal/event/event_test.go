package event

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamedesigns/lootcrate/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()

	var received []Event
	bus.Subscribe(ItemAcquired, func(ctx context.Context, e Event) error {
		received = append(received, e)
		return nil
	})

	item := domain.Item{
		InstanceID:   uuid.New(),
		InternalName: "rusty_dagger",
		Rarity:       domain.RarityCommon,
		BaseValue:    10,
		Value:        10,
	}

	err := bus.Publish(context.Background(), NewItemAcquiredEvent(uuid.New(), item))
	require.NoError(t, err)
	require.Len(t, received, 1)

	payload, ok := received[0].Payload.(domain.ItemAcquiredPayload)
	require.True(t, ok)
	assert.Equal(t, "rusty_dagger", payload.ItemName)
	assert.Equal(t, domain.RarityCommon, payload.Rarity)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: LevelUp})
	assert.NoError(t, err)
}

func TestMemoryBus_HandlerError(t *testing.T) {
	bus := NewMemoryBus()

	bus.Subscribe(LevelUp, func(ctx context.Context, e Event) error {
		return errors.New("boom")
	})
	calls := 0
	bus.Subscribe(LevelUp, func(ctx context.Context, e Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewLevelUpEvent(uuid.New(), "ada", 1, 2, 500))
	assert.Error(t, err)
	// A failing handler must not stop later handlers
	assert.Equal(t, 1, calls)
}

func TestResilientPublisher_RetriesThenSucceeds(t *testing.T) {
	bus := NewMemoryBus()
	attempts := 0
	bus.Subscribe(ItemSold, func(ctx context.Context, e Event) error {
		attempts++
		if attempts < 2 {
			return errors.New("transient")
		}
		return nil
	})

	pub := NewResilientPublisher(bus, ResilientConfig{MaxAttempts: 3})
	err := pub.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: ItemSold})
	assert.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestResilientPublisher_DeadLetter(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe(ItemSold, func(ctx context.Context, e Event) error {
		return errors.New("permanent")
	})

	deadPath := filepath.Join(t.TempDir(), "dead.jsonl")
	pub := NewResilientPublisher(bus, ResilientConfig{MaxAttempts: 2, DeadLetterPath: deadPath})

	err := pub.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: ItemSold})
	assert.NoError(t, err, "exhausted publish must not fail the frame")

	data, err := os.ReadFile(deadPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), string(ItemSold))
}
