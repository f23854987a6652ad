package sse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event represents an event sent over SSE
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   any `json:"payload"`
}

// Client represents a connected stream. Player is empty for observers,
// which only receive untargeted events.
type Client struct {
	ID           string
	Player       string
	EventChannel chan Event
	EventFilter  map[string]bool // nil means all events, otherwise only specified types
}

// envelope is an event on its way through the hub. An empty player means
// every interested client.
type envelope struct {
	event  Event
	player string
}

// Hub manages SSE client connections and event fan-out. Events pass through
// one channel, so two events sent from the same goroutine arrive in order.
type Hub struct {
	clients    map[string]*Client
	outbound   chan envelope
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	now        func() time.Time
}

// NewHub creates a new SSE Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		outbound:   make(chan envelope, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
		now:        time.Now,
	}
}

// Start starts the hub's fan-out loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the fan-out loop and closes every client channel, which ends
// the streams reading from them. Safe to call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		defer h.mu.Unlock()
		for id, client := range h.clients {
			close(client.EventChannel)
			delete(h.clients, id)
		}
		for {
			select {
			case client := <-h.register:
				close(client.EventChannel)
			default:
				return
			}
		}
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.EventChannel)
				delete(h.clients, clientID)
			}
			h.mu.Unlock()

		case env := <-h.outbound:
			h.deliver(env)

		case <-h.shutdown:
			return
		}
	}
}

func (h *Hub) deliver(env envelope) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		if env.player != "" && !strings.EqualFold(client.Player, env.player) {
			continue
		}
		if client.EventFilter != nil && !client.EventFilter[env.event.Type] {
			continue
		}

		// Non-blocking send
		select {
		case client.EventChannel <- env.event:
		default:
			slog.Warn(LogMsgEventDropped, "client_id", client.ID, "type", env.event.Type)
		}
	}
}

// Register adds a new client to the hub. player may be empty.
func (h *Hub) Register(player string, eventTypes []string) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		Player:       player,
		EventChannel: make(chan Event, ClientEventBuffer),
	}

	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool)
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}

	// a stopped hub hands back a stream that is already over
	select {
	case <-h.shutdown:
		close(client.EventChannel)
		return client
	default:
	}

	select {
	case h.register <- client:
	case <-h.shutdown:
		close(client.EventChannel)
	}
	return client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast sends an event to all interested clients
func (h *Hub) Broadcast(eventType string, payload any) {
	h.send(envelope{event: h.newEvent(eventType, payload)})
}

// SendTo sends an event to the streams of one player
func (h *Hub) SendTo(player, eventType string, payload any) {
	if player == "" {
		return
	}
	h.send(envelope{event: h.newEvent(eventType, payload), player: player})
}

func (h *Hub) send(env envelope) {
	select {
	case h.outbound <- env:
	default:
		slog.Warn(LogMsgEventDropped, "type", env.event.Type, "player", env.player)
	}
}

func (h *Hub) newEvent(eventType string, payload any) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: h.now().Unix(),
		Payload:   payload,
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage formats an SSE event for transmission
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "id: %s\nevent: %s\ndata: ", event.ID, event.Type)
	buf.Write(data)
	buf.WriteString("\n\n")
	return buf.Bytes(), nil
}
