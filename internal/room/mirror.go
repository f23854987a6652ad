package room

import (
	"context"
	"fmt"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/logger"
)

// Saver persists a room's data.
type Saver interface {
	SaveRoom(ctx context.Context, r *Room) error
}

// Mirror is the single write path for shop mutations. Every change applied
// through it lands on both the hydrated view and the persistent stub.
type Mirror struct {
	saver Saver
}

// NewMirror creates a Mirror persisting through saver.
func NewMirror(saver Saver) *Mirror {
	return &Mirror{saver: saver}
}

// Apply runs fn on the view object at index i and then on its stub. fn is
// called once per structure and must not share slices between calls.
// The view is updated even when no stub exists; ErrStubNotFound is returned.
func (m *Mirror) Apply(r *Room, i int, fn func(o *domain.Object)) error {
	if i < 0 || i >= len(r.View.Objects) {
		return fmt.Errorf(ErrMsgViewIndexFmt, domain.ErrNoSuchItem, i)
	}
	view := &r.View.Objects[i]
	fn(view)

	j := FindStub(r, view)
	if j < 0 {
		return fmt.Errorf(ErrMsgStubMissingFmt, domain.ErrStubNotFound, view.Name)
	}
	fn(&r.Data.Objects[j])
	return nil
}

// ApplyStub runs fn on the stub at data index j and on its view object, if any.
func (m *Mirror) ApplyStub(r *Room, j int, fn func(o *domain.Object)) error {
	if j < 0 || j >= len(r.Data.Objects) {
		return fmt.Errorf(ErrMsgStubIndexFmt, domain.ErrStubNotFound, j)
	}
	stub := &r.Data.Objects[j]
	fn(stub)

	if i := FindViewObject(r, stub); i >= 0 {
		fn(&r.View.Objects[i])
	}
	return nil
}

// ApplyShop writes a descriptor change to the NPC holder in the view and to
// its stub. When the holder has no stub, or the room holds the descriptor
// itself, the write goes to data.shop_data.
func (m *Mirror) ApplyShop(r *Room, fn func(s *domain.ShopDescriptor)) error {
	if i := shopHolderIndex(r); i >= 0 {
		holder := &r.View.Objects[i]
		fn(holder.ShopData)

		if j := FindStub(r, holder); j >= 0 && r.Data.Objects[j].ShopData != nil {
			fn(r.Data.Objects[j].ShopData)
			return nil
		}
		if r.Data.ShopData != nil {
			fn(r.Data.ShopData)
			return nil
		}
		return fmt.Errorf(ErrMsgStubMissingFmt, domain.ErrStubNotFound, holder.Name)
	}

	if r.Data.ShopData != nil {
		fn(r.Data.ShopData)
		return nil
	}
	return domain.ErrNoShop
}

// AddObject appends obj to data.objects and a copy of it to the view.
func (m *Mirror) AddObject(r *Room, obj domain.Object) {
	r.Data.Objects = append(r.Data.Objects, obj.Clone())
	r.View.Objects = append(r.View.Objects, obj.Clone())
}

// RemoveStub deletes the stub at data index j and its view object, if any.
func (m *Mirror) RemoveStub(r *Room, j int) (domain.Object, error) {
	if j < 0 || j >= len(r.Data.Objects) {
		return domain.Object{}, fmt.Errorf(ErrMsgStubIndexFmt, domain.ErrStubNotFound, j)
	}
	stub := r.Data.Objects[j]
	if i := FindViewObject(r, &stub); i >= 0 {
		r.View.Objects = append(r.View.Objects[:i], r.View.Objects[i+1:]...)
	}
	r.Data.Objects = append(r.Data.Objects[:j], r.Data.Objects[j+1:]...)
	return stub, nil
}

// Persist asks the room layer to save the room.
func (m *Mirror) Persist(ctx context.Context, r *Room) error {
	if m.saver == nil {
		return nil
	}
	if err := m.saver.SaveRoom(ctx, r); err != nil {
		logger.FromContext(ctx).Error(LogMsgPersistFailed, "room_id", r.RoomID, "error", err)
		return fmt.Errorf(ErrMsgPersistFmt, r.RoomID, err)
	}
	return nil
}
