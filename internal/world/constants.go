package world

// RoomDir is the directory under DATA_PATH holding seed room files,
// one <room_id>.json (or .yaml/.yml) per room.
const RoomDir = "rooms"

// SeedExtensions are the seed file extensions, in lookup order.
var SeedExtensions = []string{".json", ".yaml", ".yml"}

// ==================== Error Messages ====================

const (
	ErrMsgLoadRoomFmt   = "failed to load room %s: %w"
	ErrMsgSeedRoomFmt   = "%w: no seed file for %s"
	ErrMsgPlayerRoomFmt = "player %s cannot enter room %s: %w"
	ErrMsgTickRoomFmt   = "tick failed for room %s: %w"
	ErrMsgSeedScanFmt   = "failed to scan seed rooms: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgRoomLoaded       = "Room loaded"
	LogMsgRoomSeeded       = "Room seeded from data file"
	LogMsgRoomSaveFailed   = "Failed to save room after load"
	LogMsgPlayerJoined     = "Player joined the world"
	LogMsgPlayerLeft       = "Player left the world"
	LogMsgPlayerMoved      = "Player moved"
	LogMsgRestockFailed    = "Display restock failed"
	LogMsgControllerFailed = "Shop controller tick failed"
	LogMsgTickCompleted    = "World tick completed"
)
