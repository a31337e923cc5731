package leveling

import (
	"context"

	"github.com/google/uuid"

	"github.com/gamedesigns/lootcrate/internal/domain"
	"github.com/gamedesigns/lootcrate/internal/event"
	"github.com/gamedesigns/lootcrate/internal/logger"
	"github.com/gamedesigns/lootcrate/internal/metrics"
)

// PlayerSource is the slice of the player registry the leveling system
// needs: exclusive access to one player's state for the duration of a
// mutation.
type PlayerSource interface {
	WithPlayer(id uuid.UUID, fn func(*domain.Player) error) error
}

// Service defines the XP and level progression interface
type Service interface {
	// AwardXP adds XP to the player and applies every level threshold the
	// new total crosses. A single level-up event carrying the final level
	// is published per call, no matter how many thresholds were crossed.
	AwardXP(ctx context.Context, playerID uuid.UUID, amount int64) error
}

type service struct {
	players   PlayerSource
	publisher event.Bus
}

// NewService creates a new leveling service
func NewService(players PlayerSource, publisher event.Bus) Service {
	return &service{
		players:   players,
		publisher: publisher,
	}
}

func (s *service) AwardXP(ctx context.Context, playerID uuid.UUID, amount int64) error {
	log := logger.FromContext(ctx)

	if amount <= 0 {
		return nil
	}

	var (
		playerName         string
		oldLevel, newLevel int
		totalXP            int64
	)
	err := s.players.WithPlayer(playerID, func(p *domain.Player) error {
		oldLevel = p.Level
		p.XP += amount
		newLevel = CalculateLevel(p.XP)
		if newLevel > oldLevel {
			p.Level = newLevel
		}
		playerName = p.Name
		totalXP = p.XP
		return nil
	})
	if err != nil {
		log.Warn(LogMsgAwardXPFailed, "player_id", playerID, "error", err)
		return err
	}

	metrics.XPAwarded.Add(float64(amount))
	log.Debug(LogMsgXPAwarded, "player_id", playerID, "amount", amount, "total_xp", totalXP)

	if newLevel <= oldLevel {
		return nil
	}

	metrics.LevelUps.Add(float64(newLevel - oldLevel))

	log.Info(LogMsgLevelUp,
		"player_id", playerID,
		"old_level", oldLevel,
		"new_level", newLevel,
		"total_xp", totalXP)

	if s.publisher != nil {
		return s.publisher.Publish(ctx, event.NewLevelUpEvent(playerID, playerName, oldLevel, newLevel, totalXP))
	}
	return nil
}
