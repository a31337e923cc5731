package leveling

import (
	"math"
)

// CalculateLevel determines the level from total XP. A fresh player with
// zero XP is level 1; each next level costs BaseXP * (N ^ LevelExponent)
// on top of the previous threshold.
func CalculateLevel(totalXP int64) int {
	level, _ := calculateLevelAndNextXP(totalXP)
	return level
}

// XPForLevel returns the cumulative XP required to reach a specific level
func XPForLevel(level int) int64 {
	if level <= 1 {
		return 0
	}

	cumulative := int64(0)
	for i := 2; i <= level; i++ {
		cumulative += stepCost(i)
	}

	return cumulative
}

// XPProgress returns the current level and the XP still needed for the next one
func XPProgress(currentXP int64) (currentLevel int, xpToNext int64) {
	var xpForNext int64
	currentLevel, xpForNext = calculateLevelAndNextXP(currentXP)
	xpToNext = xpForNext - currentXP
	return
}

// stepCost is the XP needed to climb from level-1 to level
func stepCost(level int) int64 {
	return int64(BaseXP * math.Pow(float64(level), LevelExponent))
}

// calculateLevelAndNextXP computes the level and the cumulative XP required
// for the NEXT level in a single walk over the thresholds
func calculateLevelAndNextXP(totalXP int64) (int, int64) {
	level := 1
	cumulative := int64(0)

	for level < MaxIterationLevel {
		nextLevel := level + 1
		xpForNextLevel := stepCost(nextLevel)

		if cumulative+xpForNextLevel > totalXP {
			return level, cumulative + xpForNextLevel
		}
		cumulative += xpForNextLevel
		level = nextLevel
	}

	// Max level reached, report the theoretical next threshold
	return level, cumulative + stepCost(level+1)
}
