package metrics

import (
	"context"

	"github.com/osse101/MudShop_Go/internal/event"
	"github.com/osse101/MudShop_Go/internal/logger"
)

// EventMetricsCollector subscribes to shop events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all shop event types
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range []event.Type{
		event.ShopPurchase,
		event.ShopSale,
		event.ItemDelivered,
		event.DisplayRestocked,
		event.StockDrifted,
	} {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent updates the counters for one event
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.ShopPurchase:
		var p event.PurchasePayloadV1
		if p, err = event.DecodePayload[event.PurchasePayloadV1](evt.Payload); err == nil {
			Purchases.WithLabelValues(p.Source).Inc()
			ItemsBought.WithLabelValues(p.Source).Add(float64(p.Quantity))
			SilverSpent.WithLabelValues(p.Source).Add(float64(p.Total))
		}
	case event.ShopSale:
		var p event.SalePayloadV1
		if p, err = event.DecodePayload[event.SalePayloadV1](evt.Payload); err == nil {
			Sales.Inc()
			SilverEarned.Add(float64(p.Price))
		}
	case event.ItemDelivered:
		var p event.DeliveryPayloadV1
		if p, err = event.DecodePayload[event.DeliveryPayloadV1](evt.Payload); err == nil {
			Deliveries.WithLabelValues(p.Method).Inc()
		}
	case event.DisplayRestocked:
		var p event.RestockPayloadV1
		if p, err = event.DecodePayload[event.RestockPayloadV1](evt.Payload); err == nil {
			Restocks.WithLabelValues(p.PoolID).Inc()
		}
	case event.StockDrifted:
		var p event.DriftPayloadV1
		if p, err = event.DecodePayload[event.DriftPayloadV1](evt.Payload); err == nil {
			StockDrift.Add(float64(p.LinesChanged))
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Warn(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
