package game

// System names
const (
	IntentSystemName = "game.intents"
)

// Log message constants
const (
	LogMsgIntentFailed   = "Intent failed"
	LogMsgIntentApplied  = "Intent applied"
	LogMsgSessionStarted = "Session started"
	LogMsgSessionStopped = "Session stopped"
)
