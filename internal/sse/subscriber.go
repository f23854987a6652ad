package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/MudShop_Go/internal/event"
)

// forwarded lists the bus events mirrored to observer streams
var forwarded = []event.Type{
	event.ShopPurchase,
	event.ShopSale,
	event.ItemDelivered,
	event.DisplayRestocked,
	event.StockDrifted,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the forwarding handler for every shop event type
func (s *Subscriber) Subscribe() {
	types := make([]string, 0, len(forwarded))
	for _, t := range forwarded {
		s.bus.Subscribe(t, s.forward)
		types = append(types, string(t))
	}
	slog.Info(LogMsgSubscribed, "types", types)
}

// forward rebroadcasts a bus event unchanged; payloads are already JSON shaped
func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
