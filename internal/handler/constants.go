package handler

// Generic HTTP error messages for client responses. They never carry
// internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgInvalidSince          = "Invalid since parameter"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgPlayerNotFoundError = "Player not found"
	ErrMsgRoomNotFoundError   = "Room not found"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgNoShopError         = "There is no shop here"
	ErrMsgLedgerFailed        = "Failed to read the shop ledger"
	ErrMsgTickFailed          = "Room upkeep failed"
)

// Success messages
const (
	MsgCommandAccepted = "Command accepted"
	MsgPlayerJoined    = "Player joined"
	MsgPlayerLeft      = "Player left"
	MsgPlayerMoved     = "Player moved"
	MsgRoomTicked      = "Room upkeep complete"
)

// Path parameters
const (
	ParamName   = "name"
	ParamRoomID = "roomID"
)

// Query parameters
const (
	QueryRoom   = "room"
	QueryPlayer = "player"
	QueryType   = "type"
	QueryLimit  = "limit"
	QuerySince  = "since"
)

// Log messages
const (
	LogMsgDecodeFailedFmt    = "Failed to decode %s request"
	LogMsgRequestDecodedFmt  = "%s request decoded"
	LogMsgServiceErrorFmt    = "%s failed"
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteFailed        = "Failed to write response buffer"
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgSessionOpened      = "Websocket session opened"
	LogMsgSessionClosed      = "Websocket session closed"
	LogMsgUpgradeFailed      = "Websocket upgrade failed"
	LogMsgMalformedMessage   = "Discarding malformed websocket message"
	LogMsgSessionWriteFailed = "Websocket write failed"
)

// Websocket session tuning
const (
	WSReadBufferSize  = 1024
	WSWriteBufferSize = 1024
	WSWriteTimeout    = 10 // seconds
	WSMaxMessageSize  = 4096
)

// Websocket message types
const (
	WSTypeCommand = "command"
	WSTypeError   = "error"
)

// Validation limits
const (
	MaxPlayerNameLength = 32
	MaxCommandLength    = 512
	MaxLedgerLimit      = 500
)
