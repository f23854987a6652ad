package verbs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MudShop_Go/internal/concurrency"
	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/economy"
	"github.com/osse101/MudShop_Go/internal/event"
	"github.com/osse101/MudShop_Go/internal/item"
	"github.com/osse101/MudShop_Go/internal/room"
)

type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) SaveRoom(ctx context.Context, r *room.Room) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type sentLine struct {
	to      string
	message string
	exclude []string
}

// fakeWorld is an in-memory World that records everything sent through it.
type fakeWorld struct {
	mu         sync.Mutex
	players    map[string]*domain.Player
	rooms      map[string]*room.Room
	private    []sentLine
	broadcasts []sentLine
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{
		players: make(map[string]*domain.Player),
		rooms:   make(map[string]*room.Room),
	}
}

func (w *fakeWorld) SendToPlayer(_ context.Context, name, message, _ string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.private = append(w.private, sentLine{to: name, message: message})
}

func (w *fakeWorld) BroadcastToRoom(_ context.Context, roomID, message, _ string, exclude ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.broadcasts = append(w.broadcasts, sentLine{to: roomID, message: message, exclude: exclude})
}

func (w *fakeWorld) Player(name string) (*domain.Player, bool) {
	p, ok := w.players[name]
	return p, ok
}

func (w *fakeWorld) PlayerRoom(name string) (string, bool) {
	p, ok := w.players[name]
	if !ok {
		return "", false
	}
	return p.CurrentRoomID, true
}

func (w *fakeWorld) Room(_ context.Context, id string) (*room.Room, error) {
	rm, ok := w.rooms[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRoomNotFound, id)
	}
	return rm, nil
}

func (w *fakeWorld) RoomPlayers(roomID string) []string {
	var out []string
	for _, p := range w.players {
		if p.CurrentRoomID == roomID {
			out = append(out, p.Name)
		}
	}
	sort.Strings(out)
	return out
}

func (w *fakeWorld) ActiveRooms() []*room.Room {
	out := make([]*room.Room, 0, len(w.rooms))
	for _, rm := range w.rooms {
		out = append(out, rm)
	}
	return out
}

func (w *fakeWorld) AllPlayers() []domain.PlayerInfo {
	out := make([]domain.PlayerInfo, 0, len(w.players))
	for _, p := range w.players {
		out = append(out, domain.PlayerInfo{Name: p.Name, CurrentRoomID: p.CurrentRoomID})
	}
	return out
}

// messagesTo returns every private message sent to name, in order.
func (w *fakeWorld) messagesTo(name string) []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []string
	for _, l := range w.private {
		if l.to == name {
			out = append(out, l.message)
		}
	}
	return out
}

// lastTo returns the most recent private message sent to name.
func (w *fakeWorld) lastTo(name string) string {
	msgs := w.messagesTo(name)
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1]
}

var fixedNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

type harness struct {
	dir     string
	world   *fakeWorld
	saver   *MockSaver
	catalog *item.Catalog
	bus     *event.MemoryBus
	exec    *Executor
	clock   time.Time
	roll    int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		dir:     t.TempDir(),
		world:   newFakeWorld(),
		saver:   new(MockSaver),
		catalog: item.NewCatalog(),
		bus:     event.NewMemoryBus(),
		clock:   fixedNow,
	}
	require.NoError(t, os.MkdirAll(filepath.Join(h.dir, economy.TemplateDir), 0o755))
	h.saver.On("SaveRoom", mock.Anything, mock.Anything).Return(nil).Maybe()

	mirror := room.NewMirror(h.saver)
	shops := economy.NewManager(h.dir, mirror, h.catalog, h.world, h.bus, 8, time.Minute).
		WithClock(func() time.Time { return h.clock })
	deliverer := economy.NewDeliverer(mirror, h.world, nil, h.bus)

	h.exec = NewExecutor(h.world, h.catalog, shops, deliverer, mirror, concurrency.NewLockManager(), h.bus).
		WithClock(func() time.Time { return h.clock }).
		WithRand(func(int) int { return h.roll })
	return h
}

func (h *harness) writeTemplate(t *testing.T, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(h.dir, economy.TemplateDir, name), []byte(body), 0o644))
}

func (h *harness) addRoom(rm *room.Room) *room.Room {
	h.world.rooms[rm.RoomID] = rm
	return rm
}

func (h *harness) addPlayer(name, roomID string, silver int) *domain.Player {
	p := &domain.Player{
		Name:          name,
		CurrentRoomID: roomID,
		Wealth:        domain.Wealth{Silvers: silver},
		WornItems:     map[string]string{},
	}
	h.world.players[name] = p
	return p
}

func (h *harness) run(t *testing.T, player, line string) string {
	t.Helper()
	require.NoError(t, h.exec.Execute(context.Background(), player, line))
	return h.world.lastTo(player)
}

var mockAnything = mock.Anything

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
