package player

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamedesigns/lootcrate/internal/domain"
)

func TestRegistry_SnapshotIsDeepCopy(t *testing.T) {
	registry := NewRegistry()
	p := registry.Create("player")

	it := newItem("rusty_dagger", domain.RarityCommon, 10)
	require.NoError(t, registry.WithPlayer(p.ID, func(live *domain.Player) error {
		live.Inventory = append(live.Inventory, it)
		equipped := it.InstanceID
		live.Equipped = &equipped
		return nil
	}))

	snap, err := registry.Snapshot(p.ID)
	require.NoError(t, err)

	// Mutating the snapshot must never reach the live state
	snap.Inventory[0].Value = 9999
	snap.Inventory = snap.Inventory[:0]
	*snap.Equipped = uuid.New()
	snap.Currency = 123

	require.NoError(t, registry.WithPlayer(p.ID, func(live *domain.Player) error {
		assert.Len(t, live.Inventory, 1)
		assert.Equal(t, it.Value, live.Inventory[0].Value)
		assert.True(t, live.IsEquipped(it.InstanceID))
		assert.Zero(t, live.Currency)
		return nil
	}))
}

func TestRegistry_UnknownPlayer(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Snapshot(uuid.New())
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	err = registry.WithPlayer(uuid.New(), func(*domain.Player) error { return nil })
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestRegistry_SnapshotConsistentDuringMutation(t *testing.T) {
	registry := NewRegistry()
	p := registry.Create("player")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_ = registry.WithPlayer(p.ID, func(live *domain.Player) error {
				live.Inventory = append(live.Inventory, domain.Item{InstanceID: uuid.New()})
				live.XP++
				return nil
			})
		}
	}()

	// Inventory size and XP move together under the lock, so every
	// snapshot taken mid-mutation must see them in agreement
	for i := 0; i < 200; i++ {
		snap, err := registry.Snapshot(p.ID)
		require.NoError(t, err)
		assert.Equal(t, snap.XP, int64(len(snap.Inventory)))
	}
	<-done
}
