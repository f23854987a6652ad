package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MudShop_Go/internal/eventlog"
)

type eventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new PostgreSQL shop ledger
func NewEventLogRepository(db *pgxpool.Pool) eventlog.Repository {
	return &eventLogRepository{db: db}
}

// LogEvent stores an event in the database
func (r *eventLogRepository) LogEvent(ctx context.Context, eventType, roomID string, player *string, payload map[string]any) error {
	if payload == nil {
		payload = map[string]any{}
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodePayload, err)
	}

	query := `
		INSERT INTO shop_events (event_type, room_id, player, payload)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.Exec(ctx, query, eventType, roomID, player, payloadJSON); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEvent, err)
	}
	return nil
}

// GetEvents retrieves events based on filter criteria, newest first
func (r *eventLogRepository) GetEvents(ctx context.Context, filter eventlog.EventFilter) ([]eventlog.Event, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, event_type, room_id, player, payload, created_at
		FROM shop_events
		WHERE 1=1`)

	args := []any{}
	argNum := 1

	if filter.RoomID != "" {
		fmt.Fprintf(&queryBuilder, " AND room_id = $%d", argNum)
		args = append(args, filter.RoomID)
		argNum++
	}

	if filter.Player != "" {
		fmt.Fprintf(&queryBuilder, " AND LOWER(player) = LOWER($%d)", argNum)
		args = append(args, filter.Player)
		argNum++
	}

	if filter.EventType != "" {
		fmt.Fprintf(&queryBuilder, " AND event_type = $%d", argNum)
		args = append(args, filter.EventType)
		argNum++
	}

	if filter.Since != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// CleanupOldEvents removes events older than the specified number of days
func (r *eventLogRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	query := `
		DELETE FROM shop_events
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`

	result, err := r.db.Exec(ctx, query, retentionDays)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCleanupEvents, err)
	}
	return result.RowsAffected(), nil
}

func scanEvents(rows pgx.Rows) ([]eventlog.Event, error) {
	var events []eventlog.Event

	for rows.Next() {
		var evt eventlog.Event
		var payloadJSON []byte

		if err := rows.Scan(&evt.ID, &evt.EventType, &evt.RoomID, &evt.Player, &payloadJSON, &evt.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payloadJSON, &evt.Payload); err != nil {
			return nil, err
		}
		events = append(events, evt)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
