package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Error formats
const (
	ErrMsgHandlerErrorsFmt = "encountered %d errors while handling event %s: %v"
)

// Log messages
const (
	LogMsgPublishFailed = "Event publish failed"
)
