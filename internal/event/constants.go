package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Error message constants
const (
	ErrMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
