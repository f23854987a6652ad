package eventlog

// Payload keys read off shop events
const (
	PayloadKeyRoomID = "room_id"
	PayloadKeyPlayer = "player"
)

// DefaultQueryLimit caps ledger queries that do not set one
const DefaultQueryLimit = 50

// Log messages - service events
const (
	LogMsgEventPayloadUnreadable = "Event payload could not be read, skipping log"
	LogMsgFailedToLogEvent       = "Failed to log shop event"
	LogMsgEventLogged            = "Shop event logged"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting shop ledger cleanup job"
	LogMsgCleanupJobFailed    = "Shop ledger cleanup failed"
	LogMsgCleanupJobCompleted = "Shop ledger cleanup completed"
)

// Log field keys
const (
	LogFieldType          = "type"
	LogFieldRoomID        = "room_id"
	LogFieldPlayer        = "player"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retention_days"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deleted_count"
)
