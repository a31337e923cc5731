package metrics

// Metric names
const (
	MetricNameBoxesGenerated = "lootcrate_boxes_generated_total"
	MetricNameBoxesOpened    = "lootcrate_boxes_opened_total"
	MetricNameBoxesExpired   = "lootcrate_boxes_expired_total"
	MetricNamePoolSize       = "lootcrate_pool_size"
	MetricNameItemsAcquired  = "lootcrate_items_acquired_total"
	MetricNameItemsSold      = "lootcrate_items_sold_total"
	MetricNameItemsEquipped  = "lootcrate_items_equipped_total"
	MetricNameLevelUps       = "lootcrate_level_ups_total"
	MetricNameXPAwarded      = "lootcrate_xp_awarded_total"
	MetricNameFramesTotal    = "lootcrate_frames_total"
	MetricNameSystemErrors   = "lootcrate_system_errors_total"
)

// Help texts
const (
	HelpTextBoxesGenerated = "Total number of loot boxes generated, by box rarity"
	HelpTextBoxesOpened    = "Total number of loot boxes opened, by box rarity"
	HelpTextBoxesExpired   = "Total number of loot boxes that expired unopened"
	HelpTextPoolSize       = "Current number of unopened boxes in the pool"
	HelpTextItemsAcquired  = "Total number of items dropped from boxes, by item rarity"
	HelpTextItemsSold      = "Total number of items sold, by item rarity"
	HelpTextItemsEquipped  = "Total number of equip operations"
	HelpTextLevelUps       = "Total number of level-up events"
	HelpTextXPAwarded      = "Total experience points awarded"
	HelpTextFramesTotal    = "Total simulation frames executed"
	HelpTextSystemErrors   = "Total errors returned by frame systems, by system"
)

// Label names
const (
	LabelRarity = "rarity"
	LabelSystem = "system"
)
