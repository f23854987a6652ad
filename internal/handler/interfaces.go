package handler

import (
	"context"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/room"
)

// CommandExecutor runs one typed command line for a player
type CommandExecutor interface {
	Execute(ctx context.Context, playerName, line string) error
}

// PlayerRegistry is the world's player roster
type PlayerRegistry interface {
	Join(ctx context.Context, p *domain.Player) error
	Leave(ctx context.Context, name string)
	Move(ctx context.Context, name, roomID string) error
	Player(name string) (*domain.Player, bool)
	PlayerSnapshot(name string) (domain.Player, bool)
	AllPlayers() []domain.PlayerInfo
}

// RoomSource loads rooms by id. RoomSnapshot copies the data under the
// room lock.
type RoomSource interface {
	Room(ctx context.Context, roomID string) (*room.Room, error)
	RoomSnapshot(ctx context.Context, roomID string) (room.Data, error)
}

// RoomTicker runs one room's upkeep on demand
type RoomTicker interface {
	TickRoom(ctx context.Context, rm *room.Room) error
}
