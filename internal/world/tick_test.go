package world

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MudShop_Go/internal/concurrency"
	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/economy"
	"github.com/osse101/MudShop_Go/internal/item"
	"github.com/osse101/MudShop_Go/internal/restock"
	"github.com/osse101/MudShop_Go/internal/room"
)

func TestTickJob_RestocksLoadedRooms(t *testing.T) {
	ctx := context.Background()
	svc, store, notifier := newTestService(t)
	require.NoError(t, store.SaveRoom(ctx, room.New("curio", room.Data{
		Name: "curio shop",
		Objects: []domain.Object{{
			UID:              "case-1",
			Name:             "a glass display case",
			IsDynamicDisplay: true,
			RestockID:        "trinkets",
		}},
	})))
	require.NoError(t, svc.Join(ctx, &domain.Player{Name: "Alice", CurrentRoomID: "curio"}))

	pools := staticPools{"trinkets": {
		Interval: 300,
		MinItems: 1,
		MaxItems: 1,
		Message:  "A clerk rearranges the trinkets.",
		Items:    []domain.ItemRef{domain.RefInline(domain.Object{Name: "a brass key", Keywords: []string{"key"}})},
	}}
	mirror := room.NewMirror(svc)
	restocker := restock.NewRestocker(pools, item.NewCatalog(), mirror, svc, nil).WithRand(func(int) int { return 0 })
	shops := economy.NewManager(t.TempDir(), mirror, item.NewCatalog(), svc, nil, 4, time.Minute)
	job := NewTickJob(svc, restocker, shops, concurrency.NewLockManager()).
		WithClock(func() time.Time { return time.Unix(1_000_000, 0) })

	require.NoError(t, job.Process(ctx))

	rm, err := svc.Room(ctx, "curio")
	require.NoError(t, err)
	in := rm.Data.Objects[0].Contents(domain.SlotIn)
	require.Len(t, in, 1)
	assert.Equal(t, "a brass key", in[0].Name)
	assert.Equal(t, 1_000_000.0, rm.Data.Objects[0].LastRestockTime)

	saved, err := store.LoadRoom(ctx, "curio")
	require.NoError(t, err)
	assert.Len(t, saved.Objects[0].Contents(domain.SlotIn), 1)
	assert.Equal(t, []string{"Alice"}, notifier.recipients())
}

func TestTickJob_SnapshotsDuringRestock(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService(t)
	locks := concurrency.NewLockManager()
	svc.WithLocks(locks)
	require.NoError(t, store.SaveRoom(ctx, room.New("curio", room.Data{
		Name: "curio shop",
		Objects: []domain.Object{{
			UID:              "case-1",
			Name:             "a glass display case",
			IsDynamicDisplay: true,
			RestockID:        "trinkets",
		}},
	})))
	require.NoError(t, svc.Join(ctx, &domain.Player{
		Name:          "Alice",
		CurrentRoomID: "curio",
		WornItems:     map[string]string{domain.SlotMainhand: "sword-1"},
	}))

	pools := staticPools{"trinkets": {
		Interval: 1,
		MinItems: 1,
		MaxItems: 3,
		Items: []domain.ItemRef{
			domain.RefInline(domain.Object{Name: "a brass key"}),
			domain.RefInline(domain.Object{Name: "a tin whistle"}),
			domain.RefInline(domain.Object{Name: "a glass marble"}),
		},
	}}
	mirror := room.NewMirror(svc)
	restocker := restock.NewRestocker(pools, item.NewCatalog(), mirror, svc, nil)
	shops := economy.NewManager(t.TempDir(), mirror, item.NewCatalog(), svc, nil, 4, time.Minute)

	var clock atomic.Int64
	clock.Store(1_000_000)
	job := NewTickJob(svc, restocker, shops, locks).
		WithClock(func() time.Time { return time.Unix(clock.Add(10), 0) })

	rm, err := svc.Room(ctx, "curio")
	require.NoError(t, err)

	const rounds = 200
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			assert.NoError(t, job.TickRoom(ctx, rm))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			snap, err := svc.RoomSnapshot(ctx, "curio")
			if !assert.NoError(t, err) {
				return
			}
			_, err = json.Marshal(snap)
			assert.NoError(t, err)

			p, ok := svc.PlayerSnapshot("Alice")
			assert.True(t, ok)
			_, err = json.Marshal(p)
			assert.NoError(t, err)
		}
	}()
	wg.Wait()

	snap, err := svc.RoomSnapshot(ctx, "curio")
	require.NoError(t, err)
	assert.NotEmpty(t, snap.Objects[0].Contents(domain.SlotIn))
}
