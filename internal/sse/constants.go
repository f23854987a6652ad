package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the outbound event channel
	BroadcastBufferSize = 256

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 64

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 16
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE
const (
	// EventTypeMessage carries a line of game text to one player
	EventTypeMessage = "message"

	// EventTypeConnected is the first event on every stream
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE event dropped, buffer full"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscribed         = "SSE subscriber registered for event types"
)
