package world

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/room"
)

// MemoryStore keeps room data in process. It stores serialized copies so
// callers never share state with the store.
type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rooms: make(map[string][]byte)}
}

// LoadRoom returns a copy of the stored room data
func (s *MemoryStore) LoadRoom(_ context.Context, roomID string) (*room.Data, error) {
	s.mu.RLock()
	raw, ok := s.rooms[roomID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRoomNotFound, roomID)
	}

	var data room.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode room %s: %w", roomID, err)
	}
	return &data, nil
}

// SaveRoom stores a copy of r's persistent data
func (s *MemoryStore) SaveRoom(_ context.Context, r *room.Room) error {
	raw, err := json.Marshal(r.Data)
	if err != nil {
		return fmt.Errorf("failed to encode room %s: %w", r.RoomID, err)
	}
	s.mu.Lock()
	s.rooms[r.RoomID] = raw
	s.mu.Unlock()
	return nil
}

// ListRoomIDs returns the stored room ids in order
func (s *MemoryStore) ListRoomIDs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.rooms))
	for id := range s.rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
