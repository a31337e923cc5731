package lootbox

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gamedesigns/lootcrate/internal/domain"
	"github.com/gamedesigns/lootcrate/internal/event"
	"github.com/gamedesigns/lootcrate/internal/item"
	"github.com/gamedesigns/lootcrate/internal/logger"
	"github.com/gamedesigns/lootcrate/internal/metrics"
	"github.com/gamedesigns/lootcrate/internal/rarity"
	"github.com/gamedesigns/lootcrate/internal/utils"
)

// PlayerStore is the slice of the player service the opener needs
type PlayerStore interface {
	AddItem(ctx context.Context, playerID uuid.UUID, it domain.Item) error
}

// OpenResult describes the outcome of opening a box
type OpenResult struct {
	Box  *domain.LootBox `json:"box"`
	Item domain.Item     `json:"item"`
}

// Service defines the loot box choosing and opening interface
type Service interface {
	// Choose returns the box with the given ID, or the oldest available
	// box when boxID is nil. It never removes the box from the pool.
	Choose(ctx context.Context, boxID *uuid.UUID) (*domain.LootBox, error)

	// Open consumes the box and resolves it into exactly one item
	// appended to the player's inventory.
	Open(ctx context.Context, playerID uuid.UUID, boxID uuid.UUID) (*OpenResult, error)
}

type service struct {
	pool      *Pool
	catalog   *item.Catalog
	players   PlayerStore
	publisher event.Bus
	rnd       func() float64
	intn      func(min, max int) int
}

// NewService creates a new loot box service
func NewService(pool *Pool, catalog *item.Catalog, players PlayerStore, publisher event.Bus) Service {
	return &service{
		pool:      pool,
		catalog:   catalog,
		players:   players,
		publisher: publisher,
		rnd:       utils.RandomFloat,
		intn:      utils.RandomInt,
	}
}

func (s *service) Choose(ctx context.Context, boxID *uuid.UUID) (*domain.LootBox, error) {
	log := logger.FromContext(ctx)

	if boxID != nil {
		box, ok := s.pool.Get(*boxID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrBoxNotFound, *boxID)
		}
		return box, nil
	}

	box, ok := s.pool.Oldest()
	if !ok {
		log.Debug(LogMsgNoBoxAvailable)
		return nil, domain.ErrNoBoxAvailable
	}
	return box, nil
}

func (s *service) Open(ctx context.Context, playerID uuid.UUID, boxID uuid.UUID) (*OpenResult, error) {
	log := logger.FromContext(ctx)

	// Removal before the draw enforces at-most-once opening
	box, ok := s.pool.Remove(boxID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrBoxNotFound, boxID)
	}

	dropped, err := s.rollDrop(box)
	if err != nil {
		// Nothing has reached the player yet; put the box back so the
		// failed open leaves no trace. Reinsertion restarts the box's
		// TTL and moves it behind newer boxes in the age order; an
		// extended lifetime beats losing an unopened box.
		_ = s.pool.Add(box)
		log.Error(LogMsgOpenFailed, "box_id", boxID, "error", err)
		return nil, err
	}

	if err := s.players.AddItem(ctx, playerID, dropped); err != nil {
		_ = s.pool.Add(box)
		log.Error(LogMsgOpenFailed, "box_id", boxID, "error", err)
		return nil, err
	}

	metrics.BoxesOpened.WithLabelValues(string(box.Rarity)).Inc()
	metrics.ItemsAcquired.WithLabelValues(string(dropped.Rarity)).Inc()

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, event.NewBoxOpenedEvent(box.ID, box.Rarity, playerID))
		if err := s.publisher.Publish(ctx, event.NewItemAcquiredEvent(playerID, dropped)); err != nil {
			log.Warn("Item acquired handlers reported errors", "error", err)
		}
	}

	log.Info(LogMsgBoxOpened,
		"box_id", box.ID,
		"box_rarity", box.Rarity,
		"item", dropped.InternalName,
		"item_rarity", dropped.Rarity,
		"value", dropped.Value)

	return &OpenResult{Box: box, Item: dropped}, nil
}

// rollDrop performs the weighted rarity draw over the box's content pool
// and instantiates the resulting item
func (s *service) rollDrop(box *domain.LootBox) (domain.Item, error) {
	tier := rarity.DrawWithBonus(s.rnd, rarity.BonusSteps(box.Rarity))

	// Critical upgrade: small chance the drop is promoted one tier
	if s.rnd() < rarity.CriticalUpgradeChance {
		tier = rarity.NextTier(tier)
	}

	entry, ok := s.pickEntry(box, tier)
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: box %s has empty content pool", domain.ErrTemplateNotFound, box.ID)
	}

	tpl, err := s.catalog.ByName(entry.TemplateName)
	if err != nil {
		return domain.Item{}, err
	}

	return domain.Item{
		InstanceID:   uuid.New(),
		InternalName: tpl.InternalName,
		DisplayName:  tpl.DisplayName,
		Rarity:       entry.Rarity,
		BaseValue:    tpl.BaseValue,
		Value:        rarity.ScaledValue(entry.Rarity, tpl.BaseValue),
	}, nil
}

// pickEntry selects a candidate of the drawn tier, walking down tiers
// when the box carries no candidate at that tier
func (s *service) pickEntry(box *domain.LootBox, tier domain.Rarity) (domain.LootEntry, bool) {
	for ord := tier.Ordinal(); ord >= 0; ord-- {
		candidates := box.ContentsForRarity(domain.Rarities[ord])
		if len(candidates) > 0 {
			return candidates[s.intn(0, len(candidates)-1)], true
		}
	}
	return domain.LootEntry{}, false
}
