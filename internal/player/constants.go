package player

// Log message constants
const (
	LogMsgPlayerCreated = "Player created"
	LogMsgItemAdded     = "Item added to inventory"
	LogMsgItemEquipped  = "Item equipped"
	LogMsgItemSold      = "Item sold"
	LogMsgEquipFailed   = "Failed to equip item"
	LogMsgSellFailed    = "Failed to sell item"
)
