package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamedesigns/lootcrate/internal/logger"
	"github.com/gamedesigns/lootcrate/internal/testing/leaktest"
)

func TestPipeline_StepsSystemsInRegistrationOrder(t *testing.T) {
	pipeline := NewPipeline()

	var order []string
	for _, name := range []string{"generation", "intents", "cleanup"} {
		name := name
		pipeline.Register(SystemFunc{
			SystemName: name,
			Fn: func(ctx context.Context) error {
				order = append(order, name)
				return nil
			},
		})
	}

	pipeline.Step(context.Background())
	assert.Equal(t, []string{"generation", "intents", "cleanup"}, order)
}

func TestPipeline_FailingSystemDoesNotStopFrame(t *testing.T) {
	pipeline := NewPipeline()

	var ranAfterFailure bool
	pipeline.Register(SystemFunc{
		SystemName: "broken",
		Fn:         func(ctx context.Context) error { return errors.New("boom") },
	})
	pipeline.Register(SystemFunc{
		SystemName: "after",
		Fn: func(ctx context.Context) error {
			ranAfterFailure = true
			return nil
		},
	})

	pipeline.Step(context.Background())
	assert.True(t, ranAfterFailure, "systems after a failure must still tick")
}

func TestPipeline_FrameSharesOneOpID(t *testing.T) {
	pipeline := NewPipeline()

	var ids []string
	for i := 0; i < 3; i++ {
		pipeline.Register(SystemFunc{
			SystemName: "probe",
			Fn: func(ctx context.Context) error {
				ids = append(ids, logger.GetOpID(ctx))
				return nil
			},
		})
	}

	pipeline.Step(context.Background())
	require.Len(t, ids, 3)
	assert.NotEmpty(t, ids[0])
	assert.Equal(t, ids[0], ids[1])
	assert.Equal(t, ids[1], ids[2])

	pipeline.Step(context.Background())
	require.Len(t, ids, 6)
	assert.NotEqual(t, ids[0], ids[3], "each frame gets its own operation ID")
}

func TestLoop_TicksUntilStopped(t *testing.T) {
	pipeline := NewPipeline()

	var frames atomic.Int64
	pipeline.Register(SystemFunc{
		SystemName: "counter",
		Fn: func(ctx context.Context) error {
			frames.Add(1)
			return nil
		},
	})

	leaktest.CheckNoGoroutineLeak(t, func() {
		loop := NewLoop(pipeline, 5*time.Millisecond)
		loop.Start(context.Background())

		assert.Eventually(t, func() bool {
			return frames.Load() >= 3
		}, time.Second, 5*time.Millisecond)

		loop.Stop(context.Background())
		after := frames.Load()
		time.Sleep(25 * time.Millisecond)
		assert.Equal(t, after, frames.Load(), "no frames may run after Stop returns")
	})
}

func TestLoop_StopsOnContextCancel(t *testing.T) {
	pipeline := NewPipeline()

	var frames atomic.Int64
	pipeline.Register(SystemFunc{
		SystemName: "counter",
		Fn: func(ctx context.Context) error {
			frames.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(pipeline, 5*time.Millisecond)
	loop.Start(ctx)

	assert.Eventually(t, func() bool { return frames.Load() >= 1 }, time.Second, 5*time.Millisecond)
	cancel()

	// Stop after cancellation returns promptly
	done := make(chan struct{})
	go func() {
		loop.Stop(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after context cancellation")
	}
}
