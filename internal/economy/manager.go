package economy

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/event"
	"github.com/osse101/MudShop_Go/internal/logger"
	"github.com/osse101/MudShop_Go/internal/room"
	"github.com/osse101/MudShop_Go/internal/utils"
)

// Catalog is the world item table. Purchased items are registered by uid.
type Catalog interface {
	domain.ItemLookup
	Register(obj domain.Object)
}

// Broadcaster sends a line to everyone in a room.
type Broadcaster interface {
	BroadcastToRoom(ctx context.Context, roomID, message, channel string, exclude ...string)
}

// Template is the read-only definition of a controller-backed shop.
type Template struct {
	Balance   *int               `json:"balance,omitempty"`
	Inventory []domain.StockLine `json:"inventory"`
	Schedule  *Schedule          `json:"schedule,omitempty"`
}

// MaxQty returns the template quantity for a stock line id.
func (t *Template) MaxQty(id string) (int, bool) {
	for _, l := range t.Inventory {
		if l.ID == id {
			if l.Qty <= 0 {
				return DefaultMaxQty, true
			}
			return l.Qty, true
		}
	}
	return 0, false
}

// Schedule swaps the shop keeper between a day and a night shift.
type Schedule struct {
	DayStart   *int         `json:"day_start,omitempty"`
	NightStart *int         `json:"night_start,omitempty"`
	DayNPC     *ShiftKeeper `json:"day_npc,omitempty"`
	NightNPC   *ShiftKeeper `json:"night_npc,omitempty"`
}

// ShiftKeeper describes the NPC tending the shop during one shift.
type ShiftKeeper struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// KeeperAt returns the keeper on duty at the given local hour, or nil.
func (s *Schedule) KeeperAt(hour int) *ShiftKeeper {
	if s == nil {
		return nil
	}
	day, night := DefaultDayStart, DefaultNightStart
	if s.DayStart != nil {
		day = *s.DayStart
	}
	if s.NightStart != nil {
		night = *s.NightStart
	}
	if hour >= day && hour < night {
		return s.DayNPC
	}
	return s.NightNPC
}

// Manager creates controllers lazily, one per shop room, and caches them.
type Manager struct {
	dataPath    string
	mirror      *room.Mirror
	catalog     Catalog
	broadcaster Broadcaster
	publisher   event.Publisher

	cache *expirable.LRU[string, *Controller]

	rnd  func() float64
	intn func(int) int
	now  func() time.Time
}

// NewManager creates a controller manager reading templates from
// dataPath/shops. publisher may be nil.
func NewManager(dataPath string, mirror *room.Mirror, catalog Catalog, broadcaster Broadcaster, publisher event.Publisher, size int, ttl time.Duration) *Manager {
	if publisher == nil {
		publisher = event.Nop{}
	}
	onEvict := func(roomID string, _ *Controller) {
		logger.FromContext(context.Background()).Debug(LogMsgControllerEvicted, "room_id", roomID)
	}
	return &Manager{
		dataPath:    dataPath,
		mirror:      mirror,
		catalog:     catalog,
		broadcaster: broadcaster,
		publisher:   publisher,
		cache:       expirable.NewLRU[string, *Controller](size, onEvict, ttl),
		rnd:         utils.RandomFloat,
		intn:        utils.RandomIntn,
		now:         time.Now,
	}
}

// WithRand replaces the random sources. rnd returns [0,1); intn behaves like rand.Intn.
func (m *Manager) WithRand(rnd func() float64, intn func(int) int) *Manager {
	m.rnd = rnd
	m.intn = intn
	return m
}

// WithClock replaces the wall clock.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// For returns the controller of a shop room. Rooms without a shop template
// have none.
func (m *Manager) For(ctx context.Context, rm *room.Room) (*Controller, bool) {
	if rm == nil || rm.Data.ShopTemplate == "" {
		return nil, false
	}
	if c, ok := m.cache.Get(rm.RoomID); ok && c.room == rm {
		return c, true
	}

	c := &Controller{
		mgr:      m,
		room:     rm,
		template: m.loadTemplate(ctx, rm.Data.ShopTemplate),
	}
	c.ensureState(ctx)
	m.cache.Add(rm.RoomID, c)
	return c, true
}

// Evict drops the cached controller for a room.
func (m *Manager) Evict(roomID string) {
	m.cache.Remove(roomID)
}

func (m *Manager) loadTemplate(ctx context.Context, name string) Template {
	var t Template
	path := filepath.Join(m.dataPath, TemplateDir, name)
	if err := utils.LoadJSON(path, &t); err != nil {
		level := logger.FromContext(ctx).Warn
		if errors.Is(err, os.ErrNotExist) {
			level = logger.FromContext(ctx).Info
		}
		level(LogMsgTemplateMissing, "template", name, "error", err)
		return Template{}
	}
	return t
}

func (m *Manager) nowSeconds() float64 {
	return float64(m.now().UnixNano()) / float64(time.Second)
}

func (m *Manager) publish(ctx context.Context, evt event.Event) {
	if err := m.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func (m *Manager) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + m.intn(hi-lo+1)
}
