package eventlog

import "time"

// Journal defaults
const (
	DefaultCapacity  = 1000
	DefaultRetention = 24 * time.Hour
	DefaultLimit     = 50
	MaxLimit         = 1000
)

// Log messages - service events
const (
	LogMsgUnexpectedPayload = "Event payload is not a power payload, skipping log"
	LogMsgFailedToLogEvent  = "Failed to record event"
	LogMsgEventLogged       = "Event recorded"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)
