package repository

import (
	"context"

	"github.com/osse101/MudShop_Go/internal/room"
)

// Room defines the interface for room persistence. LoadRoom returns
// domain.ErrRoomNotFound when no row exists for the id.
type Room interface {
	LoadRoom(ctx context.Context, roomID string) (*room.Data, error)
	SaveRoom(ctx context.Context, r *room.Room) error
	ListRoomIDs(ctx context.Context) ([]string, error)
}
