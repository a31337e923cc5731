package lootbox

// Content pool sizing: how many candidate templates a generated box
// carries per rarity tier
const (
	ContentsPerTierMin = 1
	ContentsPerTierMax = 2
)

// Log message constants
const (
	LogMsgPoolAtCapacity = "Pool at capacity, generation skipped"
	LogMsgBoxGenerated   = "Loot box generated"
	LogMsgBoxOpened      = "Loot box opened"
	LogMsgOpenFailed     = "Failed to open loot box"
	LogMsgNoBoxAvailable = "No loot box available to choose"
)
