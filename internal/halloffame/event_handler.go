package halloffame

import (
	"context"
	"fmt"
	"time"

	"github.com/gamedesigns/lootcrate/internal/domain"
	"github.com/gamedesigns/lootcrate/internal/event"
	"github.com/gamedesigns/lootcrate/internal/logger"
)

// RegisterEventHandlers wires the board into the event bus. Each level-up
// refreshes the player's single entry with the final level of the cascade.
func RegisterEventHandlers(bus event.Bus, board *Board) {
	bus.Subscribe(event.LevelUp, func(ctx context.Context, e event.Event) error {
		payload, ok := e.Payload.(domain.LevelUpPayload)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for event %s", e.Payload, e.Type)
		}

		board.Upsert(domain.HallOfFameEntry{
			PlayerID:   payload.PlayerID,
			PlayerName: payload.PlayerName,
			Level:      payload.NewLevel,
			Score:      payload.TotalXP,
			RecordedAt: time.Unix(payload.Timestamp, 0),
		})

		logger.FromContext(ctx).Info(LogMsgEntryRecorded,
			"player_id", payload.PlayerID,
			"level", payload.NewLevel,
			"score", payload.TotalXP)
		return nil
	})
}
