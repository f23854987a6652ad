package room

import (
	"github.com/google/uuid"

	"github.com/osse101/MudShop_Go/internal/domain"
)

// View is the hydrated runtime copy of a room's objects.
type View struct {
	Objects []domain.Object
}

// Data is the persistent source of truth for a room.
type Data struct {
	Name          string                  `json:"name"`
	Description   string                  `json:"description,omitempty"`
	Objects       []domain.Object         `json:"objects"`
	HiddenObjects []domain.Object         `json:"hidden_objects,omitempty"`
	ShopData      *domain.ShopDescriptor  `json:"shop_data,omitempty"`
	ShopTemplate  string                  `json:"shop_template,omitempty"`
	ShopState     *domain.ControllerState `json:"shop_state,omitempty"`
	IsTableRoom   bool                    `json:"is_table_room,omitempty"`
}

// Clone deep-copies the persistent data.
func (d Data) Clone() Data {
	c := d
	c.Objects = domain.CloneObjects(d.Objects)
	c.HiddenObjects = domain.CloneObjects(d.HiddenObjects)
	c.ShopData = d.ShopData.Clone()
	c.ShopState = d.ShopState.Clone()
	return c
}

// Room pairs the persistent data with its hydrated view.
type Room struct {
	RoomID string
	View   View
	Data   Data
}

// New builds a room from persistent data and hydrates it.
func New(id string, data Data) *Room {
	r := &Room{RoomID: id, Data: data}
	r.Hydrate()
	return r
}

// Hydrate assigns uids to stubs that lack one and rebuilds the view as a
// deep copy of data.objects. It reports whether any stub was changed.
func (r *Room) Hydrate() bool {
	changed := backfillUIDs(r.Data.Objects)
	if backfillUIDs(r.Data.HiddenObjects) {
		changed = true
	}
	r.View.Objects = domain.CloneObjects(r.Data.Objects)
	if r.View.Objects == nil {
		r.View.Objects = []domain.Object{}
	}
	return changed
}

func backfillUIDs(objs []domain.Object) bool {
	changed := false
	for i := range objs {
		if objs[i].UID == "" {
			objs[i].UID = uuid.NewString()
			changed = true
		}
		for _, items := range objs[i].ContainerStorage {
			if backfillUIDs(items) {
				changed = true
			}
		}
	}
	return changed
}

// Name returns the room's display name.
func (r *Room) Name() string {
	return r.Data.Name
}

// ShopData returns the shop descriptor for the room: the first NPC in the
// view holding shop_data, else the room-held descriptor, else nil.
func ShopData(r *Room) *domain.ShopDescriptor {
	if r == nil {
		return nil
	}
	if i := shopHolderIndex(r); i >= 0 {
		return r.View.Objects[i].ShopData
	}
	return r.Data.ShopData
}

func shopHolderIndex(r *Room) int {
	for i := range r.View.Objects {
		o := &r.View.Objects[i]
		if o.IsNPC && o.ShopData != nil {
			return i
		}
	}
	return -1
}

// FindObject returns the index of the first view object matching term, or -1.
func FindObject(r *Room, term string) int {
	for i := range r.View.Objects {
		if r.View.Objects[i].MatchesTerm(term) {
			return i
		}
	}
	return -1
}

// FindStub returns the index in data.objects of the persistent stub for the
// given view object, or -1. Matching is by uid; stubs without a uid fall back
// to (is_npc, name) and then restock_id.
func FindStub(r *Room, obj *domain.Object) int {
	return findMatch(r.Data.Objects, obj)
}

// FindViewObject is the inverse of FindStub.
func FindViewObject(r *Room, stub *domain.Object) int {
	return findMatch(r.View.Objects, stub)
}

func findMatch(candidates []domain.Object, obj *domain.Object) int {
	if obj == nil {
		return -1
	}
	if obj.UID != "" {
		for i := range candidates {
			if candidates[i].UID == obj.UID {
				return i
			}
		}
	}
	if obj.IsNPC && obj.Name != "" {
		for i := range candidates {
			c := &candidates[i]
			if legacy(c, obj) && c.IsNPC && c.Name == obj.Name {
				return i
			}
		}
	}
	if obj.RestockID != "" {
		for i := range candidates {
			c := &candidates[i]
			if legacy(c, obj) && c.RestockID == obj.RestockID {
				return i
			}
		}
	}
	return -1
}

// legacy reports whether a heuristic match is allowed between a and b: at
// least one side carries no uid.
func legacy(a, b *domain.Object) bool {
	return a.UID == "" || b.UID == ""
}

// FindCounter returns the index in data.objects of the first object whose
// name or keywords contain token, or -1.
func FindCounter(r *Room, token string) int {
	if token == "" {
		token = domain.KeywordCounter
	}
	for i := range r.Data.Objects {
		if r.Data.Objects[i].ContainsToken(token) {
			return i
		}
	}
	return -1
}

// KeeperName returns the name of the first shop-keeping NPC in data.objects.
func KeeperName(r *Room) string {
	for i := range r.Data.Objects {
		o := &r.Data.Objects[i]
		if o.IsNPC && o.ShopData != nil && o.Name != "" {
			return o.Name
		}
	}
	return domain.DefaultKeeperName
}
