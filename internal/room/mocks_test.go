package room

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) SaveRoom(ctx context.Context, r *Room) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
