package engine

// Log message constants
const (
	LogMsgSystemFailed  = "System tick failed"
	LogMsgLoopStarted   = "Frame loop started"
	LogMsgLoopStopped   = "Frame loop stopped"
	LogMsgSystemAdded   = "System registered"
	LogMsgFrameFinished = "Frame finished"
)
