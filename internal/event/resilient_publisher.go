package event

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/gamedesigns/lootcrate/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxAttempts    int
	DeadLetterPath string
}

// ResilientPublisher wraps an Event Bus to add retry logic and dead letter
// queuing. Retries run inline rather than in the background: frame systems
// depend on downstream handlers having completed when Publish returns.
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
	mu     sync.Mutex // Protects file writes
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = RetryMaxAttempts
	}
	return &ResilientPublisher{
		inner:  inner,
		config: config,
	}
}

// Publish attempts to publish an event, retrying failed attempts inline.
// Exhausted events are appended to the dead-letter file and the last
// error is swallowed so a misbehaving subscriber cannot halt the frame.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	var err error
	for attempt := 1; attempt <= p.config.MaxAttempts; attempt++ {
		err = p.inner.Publish(ctx, event)
		if err == nil {
			return nil
		}

		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
			"event_type", event.Type,
			"attempt", attempt,
			"error", err)
	}

	logger.FromContext(ctx).Error(LogMsgEventRetryExhausted,
		"event_type", event.Type,
		"attempts", p.config.MaxAttempts,
		"error", err)
	p.writeToDeadLetter(event)
	return nil
}

func (p *ResilientPublisher) writeToDeadLetter(event Event) {
	if p.config.DeadLetterPath == "" {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := os.OpenFile(p.config.DeadLetterPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "error", err, "path", p.config.DeadLetterPath)
		return
	}
	defer f.Close()

	type DeadLetterEntry struct {
		Timestamp time.Time `json:"timestamp"`
		Event     Event     `json:"event"`
	}

	entry := DeadLetterEntry{
		Timestamp: time.Now(),
		Event:     event,
	}

	if err := json.NewEncoder(f).Encode(entry); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "error", err)
		return
	}
	logger.Info(LogMsgEventWrittenDead, "event_type", event.Type)
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}
