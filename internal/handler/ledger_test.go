package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MudShop_Go/internal/event"
	"github.com/osse101/MudShop_Go/internal/eventlog"
)

func newLedger(t *testing.T) eventlog.Service {
	t.Helper()
	svc := eventlog.NewService(eventlog.NewMemoryRepository())
	bus := event.NewMemoryBus()
	require.NoError(t, svc.Subscribe(bus))

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, event.NewPurchaseEvent("market", "Alice", event.SourceController, "a short sword", 1, 60)))
	require.NoError(t, bus.Publish(ctx, event.NewSaleEvent("market", "Bob", "a dagger", 19)))
	require.NoError(t, bus.Publish(ctx, event.NewRestockEvent("curio", "case-1", "trinkets", 2)))
	return svc
}

func TestHandleGetLedger(t *testing.T) {
	ledger := newLedger(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		contains   []string
		excludes   []string
	}{
		{"all", "/ledger", http.StatusOK, []string{"a short sword", "a dagger", "trinkets"}, nil},
		{"by room", "/ledger?room=curio", http.StatusOK, []string{"trinkets"}, []string{"a dagger"}},
		{"by player", "/ledger?player=bob", http.StatusOK, []string{"a dagger"}, []string{"a short sword"}},
		{"by type", "/ledger?type=shop.purchase", http.StatusOK, []string{"a short sword"}, []string{"a dagger"}},
		{"limit", "/ledger?limit=1", http.StatusOK, []string{"trinkets"}, []string{"a dagger"}},
		{"bad limit", "/ledger?limit=lots", http.StatusBadRequest, []string{ErrMsgInvalidLimit}, nil},
		{"bad since", "/ledger?since=yesterday", http.StatusBadRequest, []string{ErrMsgInvalidSince}, nil},
		{"no matches", "/ledger?room=atlantis", http.StatusOK, []string{`"data":[]`}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(http.MethodGet, "/ledger", tt.target, "", HandleGetLedger(ledger))

			assert.Equal(t, tt.wantStatus, w.Code)
			for _, s := range tt.contains {
				assert.Contains(t, w.Body.String(), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, w.Body.String(), s)
			}
		})
	}
}
