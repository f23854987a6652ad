package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/repository"
	"github.com/osse101/MudShop_Go/internal/room"
)

type roomRepository struct {
	db *pgxpool.Pool
}

// NewRoomRepository creates a room store that keeps each room's persistent
// data as one JSONB document
func NewRoomRepository(db *pgxpool.Pool) repository.Room {
	return &roomRepository{db: db}
}

// LoadRoom returns the stored data for roomID, or domain.ErrRoomNotFound
func (r *roomRepository) LoadRoom(ctx context.Context, roomID string) (*room.Data, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, `SELECT data FROM rooms WHERE room_id = $1`, roomID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrRoomNotFound, roomID)
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToLoadRoomFmt, roomID, err)
	}

	var data room.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToDecodeRoomFmt, roomID, err)
	}
	return &data, nil
}

// SaveRoom upserts the room's persistent data
func (r *roomRepository) SaveRoom(ctx context.Context, rm *room.Room) error {
	raw, err := json.Marshal(rm.Data)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToEncodeRoomFmt, rm.RoomID, err)
	}

	query := `
		INSERT INTO rooms (room_id, data)
		VALUES ($1, $2)
		ON CONFLICT (room_id) DO UPDATE
		SET data = EXCLUDED.data, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, rm.RoomID, raw); err != nil {
		return fmt.Errorf(ErrMsgFailedToSaveRoomFmt, rm.RoomID, err)
	}
	return nil
}

// ListRoomIDs returns every stored room id in order
func (r *roomRepository) ListRoomIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT room_id FROM rooms ORDER BY room_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRooms, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRooms, err)
	}
	return ids, nil
}
