package restock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/event"
	"github.com/osse101/MudShop_Go/internal/room"
)

type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) BroadcastToRoom(ctx context.Context, roomID, message, channel string, exclude ...string) {
	m.Called(ctx, roomID, message, channel)
}

type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) SaveRoom(ctx context.Context, r *room.Room) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

type staticPools map[string]domain.Pool

func (s staticPools) Pools(context.Context) map[string]domain.Pool {
	return s
}

type catalog map[string]domain.Object

func (c catalog) Get(key string) (domain.Object, bool) {
	o, ok := c[key]
	return o, ok
}
