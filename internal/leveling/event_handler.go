package leveling

import (
	"context"
	"fmt"

	"github.com/gamedesigns/lootcrate/internal/domain"
	"github.com/gamedesigns/lootcrate/internal/event"
)

// RegisterEventHandlers wires the leveling system into the event bus.
// Every acquired item feeds its value into the owner's XP total.
func RegisterEventHandlers(bus event.Bus, svc Service) {
	bus.Subscribe(event.ItemAcquired, func(ctx context.Context, e event.Event) error {
		payload, ok := e.Payload.(domain.ItemAcquiredPayload)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for event %s", e.Payload, e.Type)
		}
		return svc.AwardXP(ctx, payload.PlayerID, int64(payload.Value))
	})
}
