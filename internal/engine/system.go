package engine

import "context"

// System is one stage of the frame pipeline. Systems are stepped in
// registration order once per frame; a failing system never blocks the
// systems after it.
type System interface {
	// Name identifies the system in logs and metrics
	Name() string

	// Tick advances the system by one frame
	Tick(ctx context.Context) error
}

// SystemFunc adapts a plain function to the System interface
type SystemFunc struct {
	SystemName string
	Fn         func(ctx context.Context) error
}

func (s SystemFunc) Name() string { return s.SystemName }

func (s SystemFunc) Tick(ctx context.Context) error { return s.Fn(ctx) }
