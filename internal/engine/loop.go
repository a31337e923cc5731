package engine

import (
	"context"
	"sync"
	"time"

	"github.com/gamedesigns/lootcrate/internal/logger"
)

// Loop drives the pipeline at a fixed frame interval until the context
// is cancelled or Stop is called.
type Loop struct {
	pipeline *Pipeline
	interval time.Duration

	quit chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// NewLoop creates a loop over the given pipeline
func NewLoop(pipeline *Pipeline, interval time.Duration) *Loop {
	return &Loop{
		pipeline: pipeline,
		interval: interval,
		quit:     make(chan struct{}),
	}
}

// Start begins stepping frames on a background goroutine
func (l *Loop) Start(ctx context.Context) {
	logger.FromContext(ctx).Info(LogMsgLoopStarted, "interval", l.interval)

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				l.pipeline.Step(ctx)
			case <-l.quit:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop halts the loop and waits for the in-flight frame to finish
func (l *Loop) Stop(ctx context.Context) {
	l.once.Do(func() { close(l.quit) })
	l.wg.Wait()
	logger.FromContext(ctx).Info(LogMsgLoopStopped)
}
