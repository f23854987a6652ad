package eventlog

import (
	"context"
	"time"
)

// Event is one recorded shop event
type Event struct {
	ID        int64          `json:"id"`
	EventType string         `json:"event_type"`
	RoomID    string         `json:"room_id"`
	Player    *string        `json:"player,omitempty"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}

// EventFilter filters ledger queries. Zero fields match everything.
type EventFilter struct {
	RoomID    string
	Player    string
	EventType string
	Since     *time.Time
	Limit     int
}

// Repository stores the shop ledger
type Repository interface {
	// LogEvent appends one event
	LogEvent(ctx context.Context, eventType, roomID string, player *string, payload map[string]any) error

	// GetEvents returns matching events, newest first
	GetEvents(ctx context.Context, filter EventFilter) ([]Event, error)

	// CleanupOldEvents removes events older than the specified number of days
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}
