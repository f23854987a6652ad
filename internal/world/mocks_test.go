package world

import (
	"context"
	"sync"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/sse"
)

type sent struct {
	player  string
	payload sse.MessagePayload
}

// recordingNotifier captures every event sent to a player
type recordingNotifier struct {
	mu   sync.Mutex
	sent []sent
}

func (n *recordingNotifier) SendTo(player, _ string, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	msg, _ := payload.(sse.MessagePayload)
	n.sent = append(n.sent, sent{player: player, payload: msg})
}

func (n *recordingNotifier) recipients() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.sent))
	for _, s := range n.sent {
		out = append(out, s.player)
	}
	return out
}

type staticPools map[string]domain.Pool

func (s staticPools) Pools(context.Context) map[string]domain.Pool {
	return s
}
