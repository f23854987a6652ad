package restock

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/event"
	"github.com/osse101/MudShop_Go/internal/logger"
	"github.com/osse101/MudShop_Go/internal/room"
	"github.com/osse101/MudShop_Go/internal/utils"
)

// PoolSource provides the current pool table.
type PoolSource interface {
	Pools(ctx context.Context) map[string]domain.Pool
}

// Broadcaster sends a line to everyone in a room.
type Broadcaster interface {
	BroadcastToRoom(ctx context.Context, roomID, message, channel string, exclude ...string)
}

// Restocker refills dynamic display cases from their pools.
type Restocker struct {
	pools       PoolSource
	items       domain.ItemLookup
	mirror      *room.Mirror
	broadcaster Broadcaster
	publisher   event.Publisher
	intn        func(int) int
}

// NewRestocker creates a Restocker. items resolves pool entries given by
// catalog key. publisher may be nil.
func NewRestocker(pools PoolSource, items domain.ItemLookup, mirror *room.Mirror, broadcaster Broadcaster, publisher event.Publisher) *Restocker {
	if publisher == nil {
		publisher = event.Nop{}
	}
	return &Restocker{
		pools:       pools,
		items:       items,
		mirror:      mirror,
		broadcaster: broadcaster,
		publisher:   publisher,
		intn:        utils.RandomIntn,
	}
}

// WithRand replaces the random source; intn must behave like utils.RandomIntn.
func (r *Restocker) WithRand(intn func(int) int) *Restocker {
	r.intn = intn
	return r
}

// Tick checks every dynamic display case in rm at time now (seconds). It
// returns the number of cases that were refilled. The room is persisted at
// most once, and ambient messages are broadcast after the save.
func (r *Restocker) Tick(ctx context.Context, rm *room.Room, now float64) (int, error) {
	log := logger.FromContext(ctx)

	pools := r.pools.Pools(ctx)
	if len(pools) == 0 {
		return 0, nil
	}

	var (
		dirty     bool
		restocked int
		messages  []string
		events    []event.Event
	)

	for i := range rm.View.Objects {
		c := &rm.View.Objects[i]
		if !c.IsDynamicDisplay {
			continue
		}
		pool, ok := pools[c.RestockID]
		if !ok {
			continue
		}

		j := room.FindStub(rm, c)
		if j < 0 {
			log.Warn(LogMsgStubMissing, "room_id", rm.RoomID, "case", c.Name, "restock_id", c.RestockID)
			continue
		}
		stub := &rm.Data.Objects[j]
		last := stub.LastRestockTime
		stocked := len(stub.Contents(domain.SlotIn)) > 0

		switch {
		case last == 0 && stocked:
			if err := r.mirror.Apply(rm, i, func(o *domain.Object) { o.LastRestockTime = now }); err != nil {
				log.Warn(LogMsgStubMissing, "room_id", rm.RoomID, "case", c.Name, "error", err)
				continue
			}
			log.Debug(LogMsgCaseAdopted, "room_id", rm.RoomID, "case", c.Name)
			dirty = true
			continue
		case last != 0 && now-last < pool.Interval:
			continue
		}

		items := r.draw(ctx, c.RestockID, pool)
		err := r.mirror.Apply(rm, i, func(o *domain.Object) {
			o.SetContents(domain.SlotIn, domain.CloneObjects(items))
			o.LastRestockTime = now
		})
		if err != nil {
			log.Warn(LogMsgStubMissing, "room_id", rm.RoomID, "case", c.Name, "error", err)
			continue
		}

		dirty = true
		restocked++
		log.Debug(LogMsgCaseRestocked, "room_id", rm.RoomID, "case", c.Name, "pool", c.RestockID, "count", len(items))
		events = append(events, event.NewRestockEvent(rm.RoomID, c.UID, c.RestockID, len(items)))
		if pool.Message != "" {
			messages = append(messages, pool.Message)
		}
	}

	if !dirty {
		return 0, nil
	}
	if err := r.mirror.Persist(ctx, rm); err != nil {
		return restocked, err
	}

	for _, msg := range messages {
		r.broadcaster.BroadcastToRoom(ctx, rm.RoomID, msg, domain.ChannelAmbient)
	}
	for _, evt := range events {
		if err := r.publisher.Publish(ctx, evt); err != nil {
			log.Warn(LogMsgPublishFailed, "error", err)
		}
	}
	return restocked, nil
}

// draw picks randint(min, max) distinct templates, capped at the pool size,
// and gives each copy a fresh uid. Keys the catalog does not know are
// skipped.
func (r *Restocker) draw(ctx context.Context, poolID string, pool domain.Pool) []domain.Object {
	k := pool.MinItems
	if pool.MaxItems > pool.MinItems {
		k += r.intn(pool.MaxItems - pool.MinItems + 1)
	}

	picked := utils.SampleIndices(len(pool.Items), k, r.intn)
	items := make([]domain.Object, 0, len(picked))
	for _, idx := range picked {
		ref := pool.Items[idx]
		rec, inline, ok := ref.Resolve(r.items)
		if !ok {
			logger.FromContext(ctx).Warn(LogMsgItemUnresolved, "pool", poolID, "item", ref.Key)
			continue
		}
		it := rec.Clone()
		if !inline && it.ItemID == "" {
			it.ItemID = ref.Key
		}
		it.UID = uuid.NewString()
		items = append(items, it)
	}
	return items
}
