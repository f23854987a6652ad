package world

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/osse101/MudShop_Go/internal/concurrency"
	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/logger"
	"github.com/osse101/MudShop_Go/internal/repository"
	"github.com/osse101/MudShop_Go/internal/room"
	"github.com/osse101/MudShop_Go/internal/sse"
	"github.com/osse101/MudShop_Go/internal/utils"
)

// Notifier delivers an event to the streams of one player
type Notifier interface {
	SendTo(player, eventType string, payload interface{})
}

// Service is the in-process game world: loaded rooms, connected players,
// and the message fan-out between them.
type Service struct {
	store    repository.Room
	notifier Notifier
	dataPath string
	locks    *concurrency.LockManager

	// loadMu serializes first loads so a room is hydrated and saved once.
	loadMu sync.Mutex

	mu      sync.RWMutex
	rooms   map[string]*room.Room
	players map[string]*domain.Player
}

// NewService creates a world backed by store. Rooms missing from the store
// are seeded from dataPath/rooms/<id>.json on first use.
func NewService(store repository.Room, notifier Notifier, dataPath string) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		dataPath: dataPath,
		locks:    concurrency.NewLockManager(),
		rooms:    make(map[string]*room.Room),
		players:  make(map[string]*domain.Player),
	}
}

// WithLocks shares the room lock manager used by verbs and world ticks.
func (s *Service) WithLocks(locks *concurrency.LockManager) *Service {
	s.locks = locks
	return s
}

// ==================== Messaging ====================

// SendToPlayer sends one line of text to a player
func (s *Service) SendToPlayer(_ context.Context, name, message, channel string) {
	s.notifier.SendTo(name, sse.EventTypeMessage, sse.MessagePayload{Channel: channel, Text: message})
}

// BroadcastToRoom sends one line of text to everyone in a room except the
// excluded names
func (s *Service) BroadcastToRoom(ctx context.Context, roomID, message, channel string, exclude ...string) {
	for _, name := range s.RoomPlayers(roomID) {
		if excluded(name, exclude) {
			continue
		}
		s.SendToPlayer(ctx, name, message, channel)
	}
}

func excluded(name string, exclude []string) bool {
	for _, x := range exclude {
		if strings.EqualFold(name, x) {
			return true
		}
	}
	return false
}

// ==================== Players ====================

func playerKey(name string) string {
	return strings.ToLower(name)
}

// Join adds a player to the world in their current room, loading the room
// if needed. A player already present is replaced.
func (s *Service) Join(ctx context.Context, p *domain.Player) error {
	if _, err := s.Room(ctx, p.CurrentRoomID); err != nil {
		return fmt.Errorf(ErrMsgPlayerRoomFmt, p.Name, p.CurrentRoomID, err)
	}
	if p.WornItems == nil {
		p.WornItems = make(map[string]string)
	}

	s.mu.Lock()
	s.players[playerKey(p.Name)] = p
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgPlayerJoined, "player", p.Name, "room_id", p.CurrentRoomID)
	return nil
}

// Leave removes a player from the world
func (s *Service) Leave(ctx context.Context, name string) {
	s.mu.Lock()
	delete(s.players, playerKey(name))
	s.mu.Unlock()
	logger.FromContext(ctx).Info(LogMsgPlayerLeft, "player", name)
}

// Move puts a player into another room
func (s *Service) Move(ctx context.Context, name, roomID string) error {
	if _, ok := s.Player(name); !ok {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, name)
	}
	if _, err := s.Room(ctx, roomID); err != nil {
		return fmt.Errorf(ErrMsgPlayerRoomFmt, name, roomID, err)
	}

	var from string
	if !s.inPlayerRoom(name, func(current string) {
		from = current
		s.mu.Lock()
		if p, ok := s.players[playerKey(name)]; ok {
			p.CurrentRoomID = roomID
		}
		s.mu.Unlock()
	}) {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, name)
	}

	logger.FromContext(ctx).Info(LogMsgPlayerMoved, "player", name, "from", from, "to", roomID)
	return nil
}

// Player looks a connected player up by name, ignoring case
func (s *Service) Player(name string) (*domain.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[playerKey(name)]
	return p, ok
}

// PlayerRoom returns the room a connected player stands in
func (s *Service) PlayerRoom(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[playerKey(name)]
	if !ok {
		return "", false
	}
	return p.CurrentRoomID, true
}

// PlayerSnapshot returns a copy of a connected player's record, taken under
// the lock of the room they stand in.
func (s *Service) PlayerSnapshot(name string) (domain.Player, bool) {
	var snap domain.Player
	ok := s.inPlayerRoom(name, func(string) {
		if p, found := s.Player(name); found {
			snap = p.Clone()
		}
	})
	return snap, ok
}

// inPlayerRoom runs fn holding the lock of the player's current room. A move
// that lands while waiting for the lock is followed to the new room. It
// reports false when the player is not connected.
func (s *Service) inPlayerRoom(name string, fn func(roomID string)) bool {
	for {
		roomID, ok := s.PlayerRoom(name)
		if !ok {
			return false
		}
		ran := false
		s.locks.Do(roomID, func() {
			if current, ok := s.PlayerRoom(name); ok && current == roomID {
				fn(roomID)
				ran = true
			}
		})
		if ran {
			return true
		}
	}
}

// RoomPlayers returns the names of the players in a room, sorted
func (s *Service) RoomPlayers(roomID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var names []string
	for _, p := range s.players {
		if p.CurrentRoomID == roomID {
			names = append(names, p.Name)
		}
	}
	sort.Strings(names)
	return names
}

// AllPlayers returns every connected player and where they stand
func (s *Service) AllPlayers() []domain.PlayerInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.PlayerInfo, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, domain.PlayerInfo{Name: p.Name, CurrentRoomID: p.CurrentRoomID})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ==================== Rooms ====================

// Room returns a loaded room, loading it from the store (or its seed file)
// on first access. Loading hydrates the room; if that backfilled any uids
// the room is saved before it becomes visible.
func (s *Service) Room(ctx context.Context, roomID string) (*room.Room, error) {
	if rm, ok := s.loaded(roomID); ok {
		return rm, nil
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	if rm, ok := s.loaded(roomID); ok {
		return rm, nil
	}

	log := logger.FromContext(ctx)
	seeded := false
	data, err := s.store.LoadRoom(ctx, roomID)
	if errors.Is(err, domain.ErrRoomNotFound) {
		data, err = s.loadSeed(roomID)
		seeded = err == nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadRoomFmt, roomID, err)
	}

	rm := &room.Room{RoomID: roomID, Data: *data}
	changed := rm.Hydrate()

	if seeded {
		log.Info(LogMsgRoomSeeded, "room_id", roomID)
	} else {
		log.Debug(LogMsgRoomLoaded, "room_id", roomID)
	}
	if changed || seeded {
		if err := s.store.SaveRoom(ctx, rm); err != nil {
			log.Warn(LogMsgRoomSaveFailed, "room_id", roomID, "error", err)
		}
	}

	s.mu.Lock()
	s.rooms[roomID] = rm
	s.mu.Unlock()
	return rm, nil
}

func (s *Service) loaded(roomID string) (*room.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rm, ok := s.rooms[roomID]
	return rm, ok
}

// RoomSnapshot returns a copy of a room's persistent data, taken under the
// room lock.
func (s *Service) RoomSnapshot(ctx context.Context, roomID string) (room.Data, error) {
	rm, err := s.Room(ctx, roomID)
	if err != nil {
		return room.Data{}, err
	}
	var snap room.Data
	s.locks.Do(roomID, func() {
		snap = rm.Data.Clone()
	})
	return snap, nil
}

func (s *Service) loadSeed(roomID string) (*room.Data, error) {
	path, ok := utils.FindAsset(filepath.Join(s.dataPath, RoomDir, filepath.Base(roomID)))
	if !ok {
		return nil, fmt.Errorf(ErrMsgSeedRoomFmt, domain.ErrRoomNotFound, roomID)
	}
	var data room.Data
	if err := utils.LoadJSON(path, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// SaveRoom persists a room's data
func (s *Service) SaveRoom(ctx context.Context, r *room.Room) error {
	return s.store.SaveRoom(ctx, r)
}

// ActiveRooms returns the loaded rooms ordered by id
func (s *Service) ActiveRooms() []*room.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*room.Room, 0, len(s.rooms))
	for _, rm := range s.rooms {
		out = append(out, rm)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomID < out[j].RoomID })
	return out
}

// Preload loads every room the store knows about plus every seed file under
// DATA_PATH/rooms, and returns how many rooms are loaded.
func (s *Service) Preload(ctx context.Context) (int, error) {
	ids, err := s.store.ListRoomIDs(ctx)
	if err != nil {
		return 0, err
	}
	seeds, err := s.seedRoomIDs()
	if err != nil {
		return 0, err
	}

	seen := make(map[string]struct{}, len(ids)+len(seeds))
	for _, id := range append(ids, seeds...) {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, err := s.Room(ctx, id); err != nil {
			return 0, err
		}
	}
	return len(seen), nil
}

func (s *Service) seedRoomIDs() ([]string, error) {
	var ids []string
	for _, ext := range SeedExtensions {
		matches, err := filepath.Glob(filepath.Join(s.dataPath, RoomDir, "*"+ext))
		if err != nil {
			return nil, fmt.Errorf(ErrMsgSeedScanFmt, err)
		}
		for _, path := range matches {
			ids = append(ids, strings.TrimSuffix(filepath.Base(path), ext))
		}
	}
	sort.Strings(ids)
	return ids, nil
}
