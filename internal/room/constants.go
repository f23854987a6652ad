package room

// Error format strings
const (
	ErrMsgViewIndexFmt   = "%w: view index %d out of range"
	ErrMsgStubIndexFmt   = "%w: stub index %d out of range"
	ErrMsgStubMissingFmt = "%w: %s"
	ErrMsgPersistFmt     = "failed to save room %s: %w"
)

// Log messages
const (
	LogMsgPersistFailed = "Failed to persist room"
)
