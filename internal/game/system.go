package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gamedesigns/lootcrate/internal/domain"
	"github.com/gamedesigns/lootcrate/internal/logger"
	"github.com/gamedesigns/lootcrate/internal/lootbox"
	"github.com/gamedesigns/lootcrate/internal/player"
)

// intentSystem drains the queue once per frame and applies each intent
// for the session player. One failing intent never blocks the rest.
type intentSystem struct {
	queue    *IntentQueue
	playerID uuid.UUID
	boxes    lootbox.Service
	players  player.Service
}

func newIntentSystem(queue *IntentQueue, playerID uuid.UUID, boxes lootbox.Service, players player.Service) *intentSystem {
	return &intentSystem{
		queue:    queue,
		playerID: playerID,
		boxes:    boxes,
		players:  players,
	}
}

// Name implements engine.System
func (s *intentSystem) Name() string { return IntentSystemName }

// Tick implements engine.System
func (s *intentSystem) Tick(ctx context.Context) error {
	var errs []error
	for _, in := range s.queue.Drain() {
		// Each intent gets its own operation ID so its full cascade can
		// be correlated in the logs
		intentCtx := logger.WithOpID(ctx, logger.GenerateOpID())
		if err := s.apply(intentCtx, in); err != nil {
			logger.FromContext(intentCtx).Warn(LogMsgIntentFailed, "intent", fmt.Sprintf("%T", in), "error", err)
			errs = append(errs, err)
			continue
		}
		logger.FromContext(intentCtx).Debug(LogMsgIntentApplied, "intent", fmt.Sprintf("%T", in))
	}
	return errors.Join(errs...)
}

func (s *intentSystem) apply(ctx context.Context, in Intent) error {
	switch it := in.(type) {
	case OpenBoxIntent:
		box, err := s.boxes.Choose(ctx, it.BoxID)
		if err != nil {
			return err
		}
		_, err = s.boxes.Open(ctx, s.playerID, box.ID)
		return err
	case EquipIntent:
		return s.players.Equip(ctx, s.playerID, it.InstanceID)
	case SellIntent:
		_, err := s.players.Sell(ctx, s.playerID, it.InstanceID)
		return err
	default:
		return fmt.Errorf("%w: unknown intent %T", domain.ErrInvalidInput, in)
	}
}
