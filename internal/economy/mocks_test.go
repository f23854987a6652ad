package economy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/room"
)

type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) SaveRoom(ctx context.Context, r *room.Room) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

// MockMessenger records private lines and broadcasts in call order.
type MockMessenger struct {
	mock.Mock
	log []string
}

func (m *MockMessenger) SendToPlayer(ctx context.Context, name, message, channel string) {
	m.log = append(m.log, "private:"+name)
	m.Called(ctx, name, message, channel)
}

func (m *MockMessenger) BroadcastToRoom(ctx context.Context, roomID, message, channel string, exclude ...string) {
	m.log = append(m.log, "room:"+roomID)
	m.Called(ctx, roomID, message, channel, exclude)
}

// staticFlavors maps keeper names to counter keys.
type staticFlavors map[string]string

func (s staticFlavors) Flavor(keeper string) domain.Flavor {
	f := domain.DefaultFlavor()
	if counter, ok := s[keeper]; ok {
		f.CounterKey = counter
	}
	return f
}
