package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/MudShop_Go/internal/metrics"
)

// Handler returns an HTTP handler for SSE streams. playerOf names the
// player a request streams for; nil, or an empty name, opens an observer
// stream that only sees untargeted events.
func Handler(hub *Hub, playerOf func(r *http.Request) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		var eventTypes []string
		if filterParam := r.URL.Query().Get("types"); filterParam != "" {
			eventTypes = strings.Split(filterParam, ",")
		}
		player := ""
		if playerOf != nil {
			player = playerOf(r)
		}

		client := hub.Register(player, eventTypes)
		metrics.ActiveStreams.Inc()
		slog.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"player", player,
			"filters", eventTypes)

		defer func() {
			hub.Unregister(client.ID)
			metrics.ActiveStreams.Dec()
			slog.Info(LogMsgClientDisconnected, "client_id", client.ID, "player", player)
		}()

		connectEvent := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   ConnectedPayload{ClientID: client.ID, Player: player, Filters: eventTypes},
		}
		if msg, err := FormatSSEMessage(connectEvent); err == nil {
			if _, err := w.Write(msg); err != nil {
				return
			}
			flusher.Flush()
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// Hub is shutting down
					return
				}

				msg, err := FormatSSEMessage(event)
				if err != nil {
					slog.Error(LogMsgWriteError, "error", err)
					continue
				}
				if _, err := w.Write(msg); err != nil {
					slog.Warn(LogMsgWriteError, "error", err)
					return
				}
				flusher.Flush()

			case <-ticker.C:
				msg, _ := FormatSSEMessage(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()})
				if _, err := w.Write(msg); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}
