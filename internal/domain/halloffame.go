package domain

import (
	"time"

	"github.com/google/uuid"
)

// HallOfFameEntry is one ranked row on the leaderboard.
// Score is the player's total XP at the time of the last level-up.
type HallOfFameEntry struct {
	PlayerID   uuid.UUID `json:"player_id"`
	PlayerName string    `json:"player_name"`
	Level      int       `json:"level"`
	Score      int64     `json:"score"`
	RecordedAt time.Time `json:"recorded_at"`
}
