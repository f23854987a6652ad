package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/osse101/MudShop_Go/internal/logger"
	"github.com/osse101/MudShop_Go/internal/metrics"
	"github.com/osse101/MudShop_Go/internal/sse"
)

type clientMessage struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// SessionHandler serves interactive websocket sessions. Hub events for the
// player go out as JSON; command messages coming in are executed in order.
type SessionHandler struct {
	hub      *sse.Hub
	exec     CommandExecutor
	players  PlayerRegistry
	upgrader websocket.Upgrader
}

// NewSessionHandler creates a websocket session handler
func NewSessionHandler(hub *sse.Hub, exec CommandExecutor, players PlayerRegistry) *SessionHandler {
	return &SessionHandler{
		hub:     hub,
		exec:    exec,
		players: players,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  WSReadBufferSize,
			WriteBufferSize: WSWriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Handle upgrades the request and runs the session until the client leaves
func (h *SessionHandler) Handle(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, ParamName)
	if _, ok := h.players.Player(name); !ok {
		respondError(w, http.StatusNotFound, ErrMsgPlayerNotFoundError)
		return
	}

	ctx := logger.WithPlayer(r.Context(), name)
	log := logger.FromContext(ctx)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn(LogMsgUpgradeFailed, "error", err)
		return
	}
	conn.SetReadLimit(WSMaxMessageSize)

	client := h.hub.Register(name, nil)
	metrics.ActiveStreams.Inc()
	log.Info(LogMsgSessionOpened, "client_id", client.ID)

	var writeMu sync.Mutex
	write := func(v any) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		_ = conn.SetWriteDeadline(time.Now().Add(WSWriteTimeout * time.Second))
		return conn.WriteJSON(v)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for evt := range client.EventChannel {
			if err := write(evt); err != nil {
				log.Warn(LogMsgSessionWriteFailed, "error", err)
				return
			}
		}
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil || msg.Type != WSTypeCommand {
			log.Debug(LogMsgMalformedMessage, "error", err)
			if write(errorMessage{Type: WSTypeError, Error: ErrMsgInvalidRequest}) != nil {
				break
			}
			continue
		}

		line := strings.TrimSpace(msg.Command)
		if line == "" || len(line) > MaxCommandLength {
			continue
		}
		if err := h.exec.Execute(ctx, name, line); err != nil {
			_, text := mapServiceErrorToUserMessage(err)
			if write(errorMessage{Type: WSTypeError, Error: text}) != nil {
				break
			}
		}
	}

	h.hub.Unregister(client.ID)
	conn.Close()
	<-done
	metrics.ActiveStreams.Dec()
	log.Info(LogMsgSessionClosed, "client_id", client.ID)
}
