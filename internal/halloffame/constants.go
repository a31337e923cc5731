package halloffame

// Log message constants
const (
	LogMsgEntryRecorded = "Hall of fame entry recorded"
)
