package lootbox

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gamedesigns/lootcrate/internal/domain"
	"github.com/gamedesigns/lootcrate/internal/item"
	"github.com/gamedesigns/lootcrate/internal/logger"
	"github.com/gamedesigns/lootcrate/internal/metrics"
	"github.com/gamedesigns/lootcrate/internal/rarity"
	"github.com/gamedesigns/lootcrate/internal/utils"
)

// Generator refills the pool with freshly rolled boxes.
// It runs as a frame system; each tick tops the pool up to capacity
// and is a no-op when the pool is already full.
type Generator struct {
	pool     *Pool
	catalog  *item.Catalog
	interval time.Duration
	lastRun  time.Time
	rnd      func() float64
	intn     func(min, max int) int
	now      func() time.Time
}

// NewGenerator creates a generator with the default randomness sources
func NewGenerator(pool *Pool, catalog *item.Catalog, interval time.Duration) *Generator {
	return &Generator{
		pool:     pool,
		catalog:  catalog,
		interval: interval,
		rnd:      utils.RandomFloat,
		intn:     utils.RandomInt,
		now:      time.Now,
	}
}

// Name implements engine.System
func (g *Generator) Name() string { return "lootbox.generator" }

// Tick implements engine.System: refill when the interval has elapsed
func (g *Generator) Tick(ctx context.Context) error {
	if g.now().Sub(g.lastRun) < g.interval {
		return nil
	}
	g.lastRun = g.now()
	_, err := g.Refill(ctx)
	return err
}

// Refill generates boxes until the pool reaches capacity and returns
// how many were created. A full pool is an informational no-op.
func (g *Generator) Refill(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	if g.pool.Full() {
		log.Debug(LogMsgPoolAtCapacity, "size", g.pool.Len(), "capacity", g.pool.Capacity())
		return 0, nil
	}

	generated := 0
	for !g.pool.Full() {
		box, err := g.rollBox()
		if err != nil {
			return generated, fmt.Errorf("failed to roll box: %w", err)
		}
		if err := g.pool.Add(box); err != nil {
			// Capacity race is impossible on the simulation goroutine;
			// treat it as the informational no-op it is anyway
			break
		}
		generated++
		metrics.BoxesGenerated.WithLabelValues(string(box.Rarity)).Inc()
		log.Debug(LogMsgBoxGenerated, "box_id", box.ID, "rarity", box.Rarity, "name", box.Name)
	}

	return generated, nil
}

// rollBox draws the box rarity and samples its content pool from the catalog
func (g *Generator) rollBox() (*domain.LootBox, error) {
	boxRarity := rarity.Draw(g.rnd)

	var contents []domain.LootEntry
	for _, tier := range domain.Rarities {
		templates := g.catalog.ByRarity(tier)
		if len(templates) == 0 {
			return nil, fmt.Errorf("%w: no templates for tier %s", domain.ErrTemplateNotFound, tier)
		}

		count := g.intn(ContentsPerTierMin, ContentsPerTierMax)
		for i := 0; i < count; i++ {
			tpl := templates[g.intn(0, len(templates)-1)]
			contents = append(contents, domain.LootEntry{
				TemplateName: tpl.InternalName,
				Rarity:       tpl.Rarity,
			})
		}
	}

	return &domain.LootBox{
		ID:          uuid.New(),
		Name:        boxName(boxRarity),
		Rarity:      boxRarity,
		Contents:    contents,
		GeneratedAt: g.now(),
	}, nil
}

// boxName builds the display name for a box of the given rarity
func boxName(r domain.Rarity) string {
	lower := strings.ToLower(string(r))
	return strings.ToUpper(lower[:1]) + lower[1:] + " Crate"
}
