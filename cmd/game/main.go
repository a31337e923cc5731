package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gamedesigns/lootcrate/internal/config"
	"github.com/gamedesigns/lootcrate/internal/game"
	"github.com/gamedesigns/lootcrate/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	session, err := game.NewSession(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to build session: %v", err)
	}

	startMetricsServer(cfg)

	session.Start(ctx)

	// Autopilot drives the session until shutdown: it opens a box every
	// generation interval, keeps the best item equipped and liquidates
	// the rest once the inventory grows past the hoard size.
	go autopilot(ctx, session, cfg.GenerationInterval)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	cancel()
	session.Stop(context.Background())
	logSummary(session)
}

// hoardSize is how many items the autopilot keeps before selling
const hoardSize = 10

func autopilot(ctx context.Context, session *game.Session, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			session.QueueOpenBox(nil)

			p, err := session.Player(ctx)
			if err != nil {
				continue
			}

			if len(p.Inventory) == 0 {
				continue
			}

			best, worst := 0, 0
			for i := range p.Inventory {
				if p.Inventory[i].Value > p.Inventory[best].Value {
					best = i
				}
				if p.Inventory[i].Value < p.Inventory[worst].Value {
					worst = i
				}
			}

			if !p.IsEquipped(p.Inventory[best].InstanceID) {
				session.QueueEquip(p.Inventory[best].InstanceID)
			}
			if len(p.Inventory) > hoardSize && best != worst {
				session.QueueSell(p.Inventory[worst].InstanceID)
			}
		case <-ctx.Done():
			return
		}
	}
}

func startMetricsServer(cfg *config.Config) {
	if cfg.MetricsAddr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		logger.Info("Metrics listener started", "addr", cfg.MetricsAddr)
		if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
			logger.Error("Metrics listener stopped", "error", err)
		}
	}()
}

func logSummary(session *game.Session) {
	p, err := session.Player(context.Background())
	if err != nil {
		return
	}

	logger.Info("Session summary",
		"player", p.Name,
		"level", p.Level,
		"xp", p.XP,
		"currency", p.Currency,
		"inventory", len(p.Inventory))

	for rank, entry := range session.HallOfFame(10) {
		logger.Info("Hall of fame",
			"rank", rank+1,
			"player", entry.PlayerName,
			"level", entry.Level,
			"score", entry.Score)
	}
}
