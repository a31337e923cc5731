package leveling

// XP curve: reaching level N+1 from level N costs BaseXP * ((N+1) ^ LevelExponent)
const (
	BaseXP        = 100
	LevelExponent = 1.5

	// MaxIterationLevel caps the threshold walk
	MaxIterationLevel = 1000
)

// Log message constants
const (
	LogMsgXPAwarded     = "XP awarded"
	LogMsgLevelUp       = "Player leveled up"
	LogMsgAwardXPFailed = "Failed to award XP"
)
