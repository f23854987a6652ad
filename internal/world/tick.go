package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/MudShop_Go/internal/concurrency"
	"github.com/osse101/MudShop_Go/internal/economy"
	"github.com/osse101/MudShop_Go/internal/logger"
	"github.com/osse101/MudShop_Go/internal/metrics"
	"github.com/osse101/MudShop_Go/internal/restock"
	"github.com/osse101/MudShop_Go/internal/room"
)

// TickJob is the periodic world upkeep. For every loaded room, holding the
// room lock, it refills display cases and then runs the shop controller.
type TickJob struct {
	world     *Service
	restocker *restock.Restocker
	shops     *economy.Manager
	locks     *concurrency.LockManager
	now       func() time.Time
}

// NewTickJob creates a TickJob
func NewTickJob(world *Service, restocker *restock.Restocker, shops *economy.Manager, locks *concurrency.LockManager) *TickJob {
	return &TickJob{
		world:     world,
		restocker: restocker,
		shops:     shops,
		locks:     locks,
		now:       time.Now,
	}
}

// WithClock replaces the wall clock
func (j *TickJob) WithClock(now func() time.Time) *TickJob {
	j.now = now
	return j
}

// Process implements worker.Job. A failing room does not stop the others.
func (j *TickJob) Process(ctx context.Context) error {
	start := time.Now()
	defer func() { metrics.TickDuration.Observe(time.Since(start).Seconds()) }()

	rooms := j.world.ActiveRooms()
	var errs []error
	for _, rm := range rooms {
		if err := j.TickRoom(ctx, rm); err != nil {
			errs = append(errs, err)
		}
	}

	logger.FromContext(ctx).Debug(LogMsgTickCompleted, "rooms", len(rooms), "failed", len(errs))
	return errors.Join(errs...)
}

// TickRoom runs one room's upkeep under its lock
func (j *TickJob) TickRoom(ctx context.Context, rm *room.Room) error {
	log := logger.FromContext(ctx)
	now := float64(j.now().UnixNano()) / float64(time.Second)

	var errs []error
	j.locks.Do(rm.RoomID, func() {
		if _, err := j.restocker.Tick(ctx, rm, now); err != nil {
			log.Warn(LogMsgRestockFailed, "room_id", rm.RoomID, "error", err)
			errs = append(errs, err)
		}
		if c, ok := j.shops.For(ctx, rm); ok {
			if err := c.Tick(ctx); err != nil {
				log.Warn(LogMsgControllerFailed, "room_id", rm.RoomID, "error", err)
				errs = append(errs, err)
			}
		}
	})

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf(ErrMsgTickRoomFmt, rm.RoomID, err)
	}
	return nil
}
