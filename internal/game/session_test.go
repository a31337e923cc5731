package game

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamedesigns/lootcrate/internal/config"
	"github.com/gamedesigns/lootcrate/internal/domain"
	"github.com/gamedesigns/lootcrate/internal/event"
	"github.com/gamedesigns/lootcrate/internal/halloffame"
	"github.com/gamedesigns/lootcrate/internal/item"
	"github.com/gamedesigns/lootcrate/internal/leveling"
	"github.com/gamedesigns/lootcrate/internal/lootbox"
	"github.com/gamedesigns/lootcrate/internal/player"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:           "error",
		LogFormat:          "text",
		Environment:        "test",
		PoolCapacity:       5,
		BoxTTL:             time.Hour,
		GenerationInterval: 10 * time.Millisecond,
		FrameInterval:      5 * time.Millisecond,
		ItemsPath:          "../../configs/items.json",
		PlayerName:         "player",
	}
}

func TestNewSession_PoolStartsFull(t *testing.T) {
	session, err := NewSession(context.Background(), testConfig())
	require.NoError(t, err)

	assert.Len(t, session.AvailableBoxes(), 5)

	p, err := session.Player(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "player", p.Name)
	assert.Equal(t, 1, p.Level)
	assert.Empty(t, p.Inventory)
}

func TestNewSession_BadCatalogPath(t *testing.T) {
	cfg := testConfig()
	cfg.ItemsPath = "does/not/exist.json"

	_, err := NewSession(context.Background(), cfg)
	assert.Error(t, err)
}

func TestSession_OpenIntentGrantsItemAndRefills(t *testing.T) {
	session, err := NewSession(context.Background(), testConfig())
	require.NoError(t, err)

	session.Start(context.Background())
	defer session.Stop(context.Background())

	session.QueueOpenBox(nil)

	assert.Eventually(t, func() bool {
		p, err := session.Player(context.Background())
		return err == nil && len(p.Inventory) == 1
	}, time.Second, 5*time.Millisecond, "the queued open must land an item")

	// Generation tops the pool back up to capacity
	assert.Eventually(t, func() bool {
		return len(session.AvailableBoxes()) == 5
	}, time.Second, 5*time.Millisecond)

	p, err := session.Player(context.Background())
	require.NoError(t, err)
	it := p.Inventory[0]
	assert.True(t, it.Rarity.Valid())
	assert.Positive(t, it.Value)
	assert.Equal(t, p.XP, int64(it.Value), "the item's value feeds XP")
}

func TestSession_SellIntentCreditsCurrency(t *testing.T) {
	session, err := NewSession(context.Background(), testConfig())
	require.NoError(t, err)

	session.Start(context.Background())
	defer session.Stop(context.Background())

	session.QueueOpenBox(nil)

	var sold domain.Item
	require.Eventually(t, func() bool {
		p, err := session.Player(context.Background())
		if err != nil || len(p.Inventory) == 0 {
			return false
		}
		sold = p.Inventory[0]
		return true
	}, time.Second, 5*time.Millisecond)

	session.QueueSell(sold.InstanceID)

	assert.Eventually(t, func() bool {
		p, err := session.Player(context.Background())
		return err == nil && p.Currency == sold.Value && len(p.Inventory) == 0
	}, time.Second, 5*time.Millisecond, "selling must credit the item's scaled value")
}

func TestSession_PlayerReturnsSnapshot(t *testing.T) {
	session, err := NewSession(context.Background(), testConfig())
	require.NoError(t, err)

	session.Start(context.Background())
	defer session.Stop(context.Background())

	session.QueueOpenBox(nil)
	require.Eventually(t, func() bool {
		p, err := session.Player(context.Background())
		return err == nil && len(p.Inventory) == 1
	}, time.Second, 5*time.Millisecond)

	p, err := session.Player(context.Background())
	require.NoError(t, err)

	p.Inventory = nil
	p.Currency = 999
	p.Level = 50

	fresh, err := session.Player(context.Background())
	require.NoError(t, err)
	assert.Len(t, fresh.Inventory, 1, "mutating the snapshot must not reach the live state")
	assert.Zero(t, fresh.Currency)
	assert.NotEqual(t, 50, fresh.Level)
}

func TestSession_ConcurrentReadsDuringPlay(t *testing.T) {
	session, err := NewSession(context.Background(), testConfig())
	require.NoError(t, err)

	session.Start(context.Background())
	defer session.Stop(context.Background())

	for i := 0; i < 20; i++ {
		session.QueueOpenBox(nil)
	}

	// Hammer the read boundary while the frame loop mutates state; the
	// race detector guards this path
	deadline := time.Now().Add(300 * time.Millisecond)
	for time.Now().Before(deadline) {
		p, err := session.Player(context.Background())
		require.NoError(t, err)
		_ = len(p.Inventory)
		_ = p.IsEquipped(uuid.New())
		_ = session.AvailableBoxes()
		_ = session.HallOfFame(5)
	}
}

// intentHarness exercises the intent system directly, without the loop
type intentHarness struct {
	system  *intentSystem
	queue   *IntentQueue
	player  *domain.Player
	players player.Service
	pool    *lootbox.Pool
	board   *halloffame.Board
}

func newIntentHarness(t *testing.T) *intentHarness {
	t.Helper()

	catalog, err := item.LoadCatalog("../../configs/items.json")
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	registry := player.NewRegistry()
	players := player.NewService(registry, bus)
	pool := lootbox.NewPool(5, time.Hour)
	boxes := lootbox.NewService(pool, catalog, players, bus)

	leveling.RegisterEventHandlers(bus, leveling.NewService(registry, bus))
	board := halloffame.NewBoard()
	halloffame.RegisterEventHandlers(bus, board)

	p, err := players.CreatePlayer(context.Background(), "player")
	require.NoError(t, err)

	gen := lootbox.NewGenerator(pool, catalog, time.Second)
	_, err = gen.Refill(context.Background())
	require.NoError(t, err)

	queue := NewIntentQueue()
	return &intentHarness{
		system:  newIntentSystem(queue, p.ID, boxes, players),
		queue:   queue,
		player:  p,
		players: players,
		pool:    pool,
		board:   board,
	}
}

func TestIntentSystem_OpenSpecificBox(t *testing.T) {
	h := newIntentHarness(t)

	boxID := h.pool.IDs()[2]
	h.queue.Push(OpenBoxIntent{BoxID: &boxID})
	require.NoError(t, h.system.Tick(context.Background()))

	_, ok := h.pool.Get(boxID)
	assert.False(t, ok, "the chosen box must be consumed")
	assert.Len(t, h.player.Inventory, 1)
}

func TestIntentSystem_OpenAutoPicksOldest(t *testing.T) {
	h := newIntentHarness(t)

	oldest := h.pool.IDs()[0]
	h.queue.Push(OpenBoxIntent{})
	require.NoError(t, h.system.Tick(context.Background()))

	_, ok := h.pool.Get(oldest)
	assert.False(t, ok, "the oldest box must be the one consumed")
}

func TestIntentSystem_FailedIntentDoesNotBlockRest(t *testing.T) {
	h := newIntentHarness(t)

	h.queue.Push(EquipIntent{InstanceID: uuid.New()})
	h.queue.Push(OpenBoxIntent{})

	err := h.system.Tick(context.Background())
	assert.ErrorIs(t, err, domain.ErrItemNotInInventory)
	assert.Len(t, h.player.Inventory, 1, "the open after the failed equip must still apply")
}

func TestIntentSystem_EquipAndSellRoundTrip(t *testing.T) {
	h := newIntentHarness(t)

	h.queue.Push(OpenBoxIntent{})
	require.NoError(t, h.system.Tick(context.Background()))
	require.Len(t, h.player.Inventory, 1)
	it := h.player.Inventory[0]

	h.queue.Push(EquipIntent{InstanceID: it.InstanceID})
	h.queue.Push(SellIntent{InstanceID: it.InstanceID})
	require.NoError(t, h.system.Tick(context.Background()))

	assert.Empty(t, h.player.Inventory)
	assert.Nil(t, h.player.Equipped, "selling the equipped item clears the slot")
	assert.Equal(t, it.Value, h.player.Currency)
}

func TestIntentSystem_CascadeReachesHallOfFame(t *testing.T) {
	h := newIntentHarness(t)

	// Open boxes until the player levels; generation is simulated by
	// refilling between frames
	catalog, err := item.LoadCatalog("../../configs/items.json")
	require.NoError(t, err)
	gen := lootbox.NewGenerator(h.pool, catalog, time.Second)

	for i := 0; i < 40 && h.player.Level < 2; i++ {
		h.queue.Push(OpenBoxIntent{})
		require.NoError(t, h.system.Tick(context.Background()))
		_, err := gen.Refill(context.Background())
		require.NoError(t, err)
	}

	require.GreaterOrEqual(t, h.player.Level, 2, "opening 40 boxes must cross the first threshold")

	entry, ok := h.board.Entry(h.player.ID)
	require.True(t, ok, "the level-up must reach the hall of fame in the same cascade")
	assert.Equal(t, h.player.Level, entry.Level)
	assert.Equal(t, h.player.XP, entry.Score)
}
