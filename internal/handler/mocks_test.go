package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/room"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

type MockExecutor struct {
	mock.Mock
}

func (m *MockExecutor) Execute(ctx context.Context, playerName, line string) error {
	args := m.Called(ctx, playerName, line)
	return args.Error(0)
}

type MockPlayers struct {
	mock.Mock
}

func (m *MockPlayers) Join(ctx context.Context, p *domain.Player) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPlayers) Leave(ctx context.Context, name string) {
	m.Called(ctx, name)
}

func (m *MockPlayers) Move(ctx context.Context, name, roomID string) error {
	args := m.Called(ctx, name, roomID)
	return args.Error(0)
}

func (m *MockPlayers) Player(name string) (*domain.Player, bool) {
	args := m.Called(name)
	p, _ := args.Get(0).(*domain.Player)
	return p, args.Bool(1)
}

func (m *MockPlayers) PlayerSnapshot(name string) (domain.Player, bool) {
	args := m.Called(name)
	p, _ := args.Get(0).(domain.Player)
	return p, args.Bool(1)
}

func (m *MockPlayers) AllPlayers() []domain.PlayerInfo {
	args := m.Called()
	return args.Get(0).([]domain.PlayerInfo)
}

type MockRooms struct {
	mock.Mock
}

func (m *MockRooms) Room(ctx context.Context, roomID string) (*room.Room, error) {
	args := m.Called(ctx, roomID)
	rm, _ := args.Get(0).(*room.Room)
	return rm, args.Error(1)
}

func (m *MockRooms) RoomSnapshot(ctx context.Context, roomID string) (room.Data, error) {
	args := m.Called(ctx, roomID)
	data, _ := args.Get(0).(room.Data)
	return data, args.Error(1)
}

type MockTicker struct {
	mock.Mock
}

func (m *MockTicker) TickRoom(ctx context.Context, rm *room.Room) error {
	args := m.Called(ctx, rm)
	return args.Error(0)
}

// serve routes one request through a chi router so URL params resolve
func serve(method, pattern, target, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
