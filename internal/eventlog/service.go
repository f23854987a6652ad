package eventlog

import (
	"context"

	"github.com/osse101/MudShop_Go/internal/event"
	"github.com/osse101/MudShop_Go/internal/logger"
)

// LoggedTypes are the bus events written to the ledger
var LoggedTypes = []event.Type{
	event.ShopPurchase,
	event.ShopSale,
	event.ItemDelivered,
	event.DisplayRestocked,
	event.StockDrifted,
}

// Service records shop events and answers ledger queries
type Service interface {
	// Subscribe registers the ledger on every shop event type
	Subscribe(bus event.Bus) error

	// Events returns matching ledger entries, newest first
	Events(ctx context.Context, filter EventFilter) ([]Event, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new ledger service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all shop event types
func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range LoggedTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

// handleEvent flattens the typed payload and appends it to the ledger
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[map[string]any](evt.Payload)
	if err != nil {
		log.Debug(LogMsgEventPayloadUnreadable, LogFieldType, evt.Type, LogFieldError, err)
		return nil
	}

	roomID, _ := payload[PayloadKeyRoomID].(string)
	var player *string
	if name, ok := payload[PayloadKeyPlayer].(string); ok && name != "" {
		player = &name
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), roomID, player, payload); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldRoomID, roomID)
	return nil
}

// Events returns ledger entries, applying the default limit
func (s *service) Events(ctx context.Context, filter EventFilter) ([]Event, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultQueryLimit
	}
	return s.repo.GetEvents(ctx, filter)
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
