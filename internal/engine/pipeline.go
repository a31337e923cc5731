package engine

import (
	"context"

	"github.com/gamedesigns/lootcrate/internal/logger"
	"github.com/gamedesigns/lootcrate/internal/metrics"
)

// Pipeline steps a fixed, ordered set of systems once per frame.
// Registration order is execution order.
type Pipeline struct {
	systems []System
}

// NewPipeline creates an empty pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Register appends a system to the end of the pipeline
func (p *Pipeline) Register(sys System) {
	p.systems = append(p.systems, sys)
	logger.Debug(LogMsgSystemAdded, "system", sys.Name(), "position", len(p.systems)-1)
}

// Systems returns the registered systems in execution order
func (p *Pipeline) Systems() []System {
	return p.systems
}

// Step runs one frame. Every system is ticked even when an earlier one
// fails; the frame shares a single operation ID across all its log lines.
func (p *Pipeline) Step(ctx context.Context) {
	ctx = logger.WithOpID(ctx, logger.GenerateOpID())
	log := logger.FromContext(ctx)

	for _, sys := range p.systems {
		if err := sys.Tick(ctx); err != nil {
			metrics.SystemErrors.WithLabelValues(sys.Name()).Inc()
			log.Error(LogMsgSystemFailed, "system", sys.Name(), "error", err)
		}
	}

	metrics.FramesTotal.Inc()
}
