package postgres

// Error Messages - Room Operations
const (
	ErrMsgFailedToLoadRoomFmt   = "failed to load room %s: %w"
	ErrMsgFailedToDecodeRoomFmt = "failed to decode room %s: %w"
	ErrMsgFailedToEncodeRoomFmt = "failed to encode room %s: %w"
	ErrMsgFailedToSaveRoomFmt   = "failed to save room %s: %w"
	ErrMsgFailedToListRooms     = "failed to list rooms"
)

// Error Messages - Shop Ledger
const (
	ErrMsgFailedToEncodePayload = "failed to encode event payload"
	ErrMsgFailedToInsertEvent   = "failed to insert shop event"
	ErrMsgFailedToQueryEvents   = "failed to query shop events"
	ErrMsgFailedToCleanupEvents = "failed to clean up shop events"
)
