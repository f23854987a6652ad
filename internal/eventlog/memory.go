package eventlog

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryRepository keeps the ledger in process, for runs without a database
type MemoryRepository struct {
	mu     sync.Mutex
	events []Event
	nextID int64
	now    func() time.Time
}

// NewMemoryRepository creates an empty in-memory ledger
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

// LogEvent implements Repository
func (r *MemoryRepository) LogEvent(_ context.Context, eventType, roomID string, player *string, payload map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.events = append(r.events, Event{
		ID:        r.nextID,
		EventType: eventType,
		RoomID:    roomID,
		Player:    player,
		Payload:   payload,
		CreatedAt: r.now(),
	})
	return nil
}

// GetEvents implements Repository
func (r *MemoryRepository) GetEvents(_ context.Context, filter EventFilter) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Event
	for i := len(r.events) - 1; i >= 0; i-- {
		e := r.events[i]
		if !matches(e, filter) {
			continue
		}
		out = append(out, e)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func matches(e Event, f EventFilter) bool {
	switch {
	case f.RoomID != "" && e.RoomID != f.RoomID:
		return false
	case f.EventType != "" && e.EventType != f.EventType:
		return false
	case f.Player != "" && (e.Player == nil || !strings.EqualFold(*e.Player, f.Player)):
		return false
	case f.Since != nil && e.CreatedAt.Before(*f.Since):
		return false
	}
	return true
}

// CleanupOldEvents implements Repository
func (r *MemoryRepository) CleanupOldEvents(_ context.Context, retentionDays int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().AddDate(0, 0, -retentionDays)
	kept := r.events[:0]
	var removed int64
	for _, e := range r.events {
		if e.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	r.events = kept
	return removed, nil
}
