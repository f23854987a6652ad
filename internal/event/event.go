package event

import (
	"context"
	"fmt"
	"sync"
)

// Type represents the type of an event
type Type string

// Event represents a shop economy event
type Event struct {
	Version string `json:"version"`
	Type    Type   `json:"type"`
	Payload any    `json:"payload"`
}

// Shop economy event types
const (
	ShopPurchase     Type = "shop.purchase"
	ShopSale         Type = "shop.sale"
	ItemDelivered    Type = "shop.delivered"
	DisplayRestocked Type = "display.restocked"
	StockDrifted     Type = "shop.stock_drifted"
)

// Purchase sources
const (
	SourceController = "controller"
	SourceDisplay    = "display"
	SourceDescriptor = "descriptor"
)

// PurchasePayloadV1 describes a completed purchase
type PurchasePayloadV1 struct {
	RoomID   string `json:"room_id"`
	Player   string `json:"player"`
	Source   string `json:"source"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Total    int    `json:"total"`
}

// SalePayloadV1 describes items sold to a shop
type SalePayloadV1 struct {
	RoomID   string `json:"room_id"`
	Player   string `json:"player"`
	ItemName string `json:"item_name"`
	Price    int    `json:"price"`
}

// DeliveryPayloadV1 describes where a purchased item ended up
type DeliveryPayloadV1 struct {
	RoomID  string `json:"room_id"`
	Player  string `json:"player"`
	ItemUID string `json:"item_uid"`
	Method  string `json:"method"`
}

// RestockPayloadV1 describes a display case refill
type RestockPayloadV1 struct {
	RoomID  string `json:"room_id"`
	CaseUID string `json:"case_uid"`
	PoolID  string `json:"pool_id"`
	Count   int    `json:"count"`
}

// DriftPayloadV1 describes a controller stock simulation step
type DriftPayloadV1 struct {
	RoomID       string `json:"room_id"`
	LinesChanged int    `json:"lines_changed"`
}

// NewPurchaseEvent creates a purchase event
func NewPurchaseEvent(roomID, player, source, itemName string, qty, total int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ShopPurchase,
		Payload: PurchasePayloadV1{
			RoomID:   roomID,
			Player:   player,
			Source:   source,
			ItemName: itemName,
			Quantity: qty,
			Total:    total,
		},
	}
}

// NewSaleEvent creates a sale event
func NewSaleEvent(roomID, player, itemName string, price int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ShopSale,
		Payload: SalePayloadV1{RoomID: roomID, Player: player, ItemName: itemName, Price: price},
	}
}

// NewDeliveryEvent creates a delivery event
func NewDeliveryEvent(roomID, player, itemUID, method string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemDelivered,
		Payload: DeliveryPayloadV1{RoomID: roomID, Player: player, ItemUID: itemUID, Method: method},
	}
}

// NewRestockEvent creates a display restock event
func NewRestockEvent(roomID, caseUID, poolID string, count int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DisplayRestocked,
		Payload: RestockPayloadV1{RoomID: roomID, CaseUID: caseUID, PoolID: poolID, Count: count},
	}
}

// NewDriftEvent creates a stock drift event
func NewDriftEvent(roomID string, linesChanged int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StockDrifted,
		Payload: DriftPayloadV1{RoomID: roomID, LinesChanged: linesChanged},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(ErrMsgHandlerErrorsFmt, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Nop is a Publisher that drops every event
type Nop struct{}

// Publish implements Publisher
func (Nop) Publish(context.Context, Event) error { return nil }
