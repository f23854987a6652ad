package eventlog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MudShop_Go/internal/event"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) LogEvent(ctx context.Context, eventType, roomID string, player *string, payload map[string]any) error {
	return m.Called(ctx, eventType, roomID, player, payload).Error(0)
}

func (m *MockRepository) GetEvents(ctx context.Context, filter EventFilter) ([]Event, error) {
	args := m.Called(ctx, filter)
	events, _ := args.Get(0).([]Event)
	return events, args.Error(1)
}

func (m *MockRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventBus records subscriptions so tests can assert which event
// types the ledger listens to.
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, evt event.Event) error {
	return m.Called(ctx, evt).Error(0)
}

func (m *MockEventBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}
