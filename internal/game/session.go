package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gamedesigns/lootcrate/internal/config"
	"github.com/gamedesigns/lootcrate/internal/domain"
	"github.com/gamedesigns/lootcrate/internal/engine"
	"github.com/gamedesigns/lootcrate/internal/event"
	"github.com/gamedesigns/lootcrate/internal/halloffame"
	"github.com/gamedesigns/lootcrate/internal/item"
	"github.com/gamedesigns/lootcrate/internal/leveling"
	"github.com/gamedesigns/lootcrate/internal/logger"
	"github.com/gamedesigns/lootcrate/internal/lootbox"
	"github.com/gamedesigns/lootcrate/internal/player"
)

// Session wires the full reward loop for one player: catalog, pool,
// generation, intents, leveling and the hall of fame, driven by the
// frame loop.
type Session struct {
	cfg *config.Config

	playerID uuid.UUID
	players  player.Service
	boxes    lootbox.Service
	board    *halloffame.Board
	queue    *IntentQueue

	pool *lootbox.Pool
	loop *engine.Loop
}

// NewSession builds the session from configuration. The pool starts full
// so the player has boxes to open on the first frame.
func NewSession(ctx context.Context, cfg *config.Config) (*Session, error) {
	catalog, err := item.LoadCatalog(cfg.ItemsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load item catalog: %w", err)
	}

	bus := event.NewResilientPublisher(event.NewMemoryBus(), event.ResilientConfig{
		DeadLetterPath: cfg.DeadLetterPath,
	})

	registry := player.NewRegistry()
	players := player.NewService(registry, bus)

	pool := lootbox.NewPool(cfg.PoolCapacity, cfg.BoxTTL)
	boxes := lootbox.NewService(pool, catalog, players, bus)
	generator := lootbox.NewGenerator(pool, catalog, cfg.GenerationInterval)

	leveling.RegisterEventHandlers(bus, leveling.NewService(registry, bus))

	board := halloffame.NewBoard()
	halloffame.RegisterEventHandlers(bus, board)

	p, err := players.CreatePlayer(ctx, cfg.PlayerName)
	if err != nil {
		return nil, err
	}

	queue := NewIntentQueue()

	pipeline := engine.NewPipeline()
	pipeline.Register(generator)
	pipeline.Register(newIntentSystem(queue, p.ID, boxes, players))

	if _, err := generator.Refill(ctx); err != nil {
		return nil, fmt.Errorf("failed to fill initial pool: %w", err)
	}

	return &Session{
		cfg:      cfg,
		playerID: p.ID,
		players:  players,
		boxes:    boxes,
		board:    board,
		queue:    queue,
		pool:     pool,
		loop:     engine.NewLoop(pipeline, cfg.FrameInterval),
	}, nil
}

// Start begins the frame loop
func (s *Session) Start(ctx context.Context) {
	s.loop.Start(ctx)
	logger.FromContext(ctx).Info(LogMsgSessionStarted,
		"player_id", s.playerID,
		"pool_capacity", s.cfg.PoolCapacity,
		"frame_interval", s.cfg.FrameInterval)
}

// Stop halts the frame loop and waits for the in-flight frame
func (s *Session) Stop(ctx context.Context) {
	s.loop.Stop(ctx)
	logger.FromContext(ctx).Info(LogMsgSessionStopped, "player_id", s.playerID)
}

// QueueOpenBox queues an open for the given box, or for the oldest box
// when boxID is nil
func (s *Session) QueueOpenBox(boxID *uuid.UUID) {
	s.queue.Push(OpenBoxIntent{BoxID: boxID})
}

// QueueEquip queues equipping the given item instance
func (s *Session) QueueEquip(instanceID uuid.UUID) {
	s.queue.Push(EquipIntent{InstanceID: instanceID})
}

// QueueSell queues selling the given item instance
func (s *Session) QueueSell(instanceID uuid.UUID) {
	s.queue.Push(SellIntent{InstanceID: instanceID})
}

// Player returns a snapshot of the session player's state. The live
// struct stays on the simulation goroutine; callers may read or mutate
// the copy freely.
func (s *Session) Player(ctx context.Context) (*domain.Player, error) {
	return s.players.GetPlayer(ctx, s.playerID)
}

// AvailableBoxes returns the IDs of the boxes currently in the pool,
// oldest first
func (s *Session) AvailableBoxes() []uuid.UUID {
	return s.pool.IDs()
}

// HallOfFame returns the top n entries of the board
func (s *Session) HallOfFame(n int) []domain.HallOfFameEntry {
	return s.board.Top(n)
}
