package verbs

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/economy"
	"github.com/osse101/MudShop_Go/internal/event"
	"github.com/osse101/MudShop_Go/internal/logger"
	"github.com/osse101/MudShop_Go/internal/room"
)

// Listing is one line a shop offers, as shown to players.
type Listing struct {
	Name   string
	Price  int
	Qty    int // -1 when the shop does not count stock
	Record domain.Object
}

// ShopSource is anything a player can browse and buy from. Controllers
// sell from abstract stock, display cases sell the physical items they
// hold, and descriptor shops sell copies of catalog items.
type ShopSource interface {
	Keeper() string
	Listings() []Listing
	FindByKeyword(term string) int
	Purchase(ctx context.Context, p *domain.Player, index, qty int) (*economy.Purchase, error)
}

// ==================== Controller ====================

type controllerShop struct {
	c *economy.Controller
}

func (s controllerShop) Keeper() string { return s.c.KeeperName() }

func (s controllerShop) Listings() []Listing {
	inv := s.c.Inventory()
	out := make([]Listing, len(inv))
	for i, l := range inv {
		out[i] = Listing{Name: l.Name, Price: l.BaseValue, Qty: l.Qty}
	}
	return out
}

func (s controllerShop) FindByKeyword(term string) int {
	return s.c.FindItemIndexByKeyword(term)
}

func (s controllerShop) Purchase(ctx context.Context, p *domain.Player, index, qty int) (*economy.Purchase, error) {
	return s.c.BuyItem(ctx, index, qty, p)
}

// ==================== Display cases ====================

type displaySlot struct {
	caseIdx int
	pos     int
	item    domain.Object
}

type displayShop struct {
	e     *Executor
	rm    *room.Room
	shop  *domain.ShopDescriptor
	slots []displaySlot
}

// newDisplayShop collects the contents of every dynamic display case in the
// room, in view order. It returns nil when the room has no such case.
func (e *Executor) newDisplayShop(rm *room.Room) *displayShop {
	s := &displayShop{e: e, rm: rm, shop: &domain.ShopDescriptor{Markup: e.displayMarkup}}
	found := false
	for i := range rm.View.Objects {
		c := &rm.View.Objects[i]
		if !c.IsDynamicDisplay {
			continue
		}
		found = true
		for pos, it := range c.Contents(domain.SlotIn) {
			s.slots = append(s.slots, displaySlot{caseIdx: i, pos: pos, item: it})
		}
	}
	if !found {
		return nil
	}
	return s
}

func (s *displayShop) Keeper() string { return room.KeeperName(s.rm) }

func (s *displayShop) price(it domain.Object) int {
	return economy.BuyPrice(domain.RefInline(it), nil, s.shop)
}

func (s *displayShop) Listings() []Listing {
	out := make([]Listing, len(s.slots))
	for i, sl := range s.slots {
		out[i] = Listing{Name: sl.item.Name, Price: s.price(sl.item), Qty: 1, Record: sl.item}
	}
	return out
}

func (s *displayShop) FindByKeyword(term string) int {
	for i := range s.slots {
		if s.slots[i].item.MatchesTerm(term) {
			return i
		}
	}
	return -1
}

// Purchase takes one item out of its case. The case change goes through the
// mirror so the stub loses the item too.
func (s *displayShop) Purchase(ctx context.Context, p *domain.Player, index, qty int) (*economy.Purchase, error) {
	if index < 0 || index >= len(s.slots) {
		return nil, fmt.Errorf(ErrMsgDisplayIndexFmt, domain.ErrNoSuchItem, index)
	}
	if qty != 1 {
		return nil, fmt.Errorf(ErrMsgDisplayQtyFmt, domain.ErrInvalidQuantity, qty)
	}

	sl := s.slots[index]
	display := &s.rm.View.Objects[sl.caseIdx]
	if room.FindStub(s.rm, display) < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrStubNotFound, display.Name)
	}

	price := s.price(sl.item)
	if !p.CanAfford(price) {
		return nil, fmt.Errorf(ErrMsgCostFmt, domain.ErrCannotAfford, price, p.Wealth.Silvers)
	}

	p.Wealth.Silvers -= price
	if err := s.e.mirror.Apply(s.rm, sl.caseIdx, func(o *domain.Object) {
		o.SetContents(domain.SlotIn, withoutItem(o.Contents(domain.SlotIn), sl.item.UID, sl.pos))
	}); err != nil {
		p.Wealth.Silvers += price
		return nil, err
	}

	item := sl.item.Clone()
	item.UID = uuid.NewString()
	s.e.catalog.Register(item)
	// The sale stands even if the save fails; Persist logs the failure.
	_ = s.e.mirror.Persist(ctx, s.rm)

	logger.FromContext(ctx).Info(LogMsgDisplayPurchased,
		"room_id", s.rm.RoomID, "item", item.Name, "case", display.Name, "price", price)
	s.e.publish(ctx, event.NewPurchaseEvent(s.rm.RoomID, p.Name, event.SourceDisplay, item.Name, 1, price))

	return &economy.Purchase{
		Line:     domain.StockLine{Name: item.Name, BaseValue: price, Keywords: item.Keywords},
		Quantity: 1,
		Total:    price,
		Items:    []domain.Object{item},
	}, nil
}

// withoutItem returns a copy of items minus the entry with the given uid,
// or minus the entry at pos when uid is empty.
func withoutItem(items []domain.Object, uid string, pos int) []domain.Object {
	drop := -1
	if uid != "" {
		for i := range items {
			if items[i].UID == uid {
				drop = i
				break
			}
		}
	} else if pos >= 0 && pos < len(items) {
		drop = pos
	}

	out := make([]domain.Object, 0, len(items))
	for i := range items {
		if i != drop {
			out = append(out, items[i].Clone())
		}
	}
	return out
}

// ==================== Descriptor ====================

type descriptorShop struct {
	e    *Executor
	rm   *room.Room
	shop *domain.ShopDescriptor
}

func (e *Executor) newDescriptorShop(rm *room.Room) *descriptorShop {
	shop := room.ShopData(rm)
	if shop == nil {
		return nil
	}
	return &descriptorShop{e: e, rm: rm, shop: shop}
}

func (s *descriptorShop) Keeper() string { return room.KeeperName(s.rm) }

func (s *descriptorShop) Listings() []Listing {
	out := make([]Listing, 0, len(s.shop.Inventory))
	for _, ref := range s.shop.Inventory {
		rec, _, ok := ref.Resolve(s.e.catalog)
		name := rec.Name
		if !ok || name == "" {
			name = "An item"
		}
		out = append(out, Listing{Name: name, Price: economy.BuyPrice(ref, s.e.catalog, s.shop), Qty: -1, Record: rec})
	}
	return out
}

func (s *descriptorShop) FindByKeyword(term string) int {
	for i, ref := range s.shop.Inventory {
		if rec, _, ok := ref.Resolve(s.e.catalog); ok && rec.MatchesTerm(term) {
			return i
		}
	}
	return -1
}

// Purchase sells fresh copies of a catalog item. Descriptor shops do not
// count stock.
func (s *descriptorShop) Purchase(ctx context.Context, p *domain.Player, index, qty int) (*economy.Purchase, error) {
	if index < 0 || index >= len(s.shop.Inventory) {
		return nil, fmt.Errorf(ErrMsgDisplayIndexFmt, domain.ErrNoSuchItem, index)
	}
	if qty <= 0 || qty > domain.MaxTransactionQuantity {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, qty)
	}

	ref := s.shop.Inventory[index]
	rec, _, ok := ref.Resolve(s.e.catalog)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTemplateMissing, ref.Key)
	}
	price := economy.BuyPrice(ref, s.e.catalog, s.shop)
	total := price * qty
	if !p.CanAfford(total) {
		return nil, fmt.Errorf(ErrMsgCostFmt, domain.ErrCannotAfford, total, p.Wealth.Silvers)
	}

	p.Wealth.Silvers -= total
	items := make([]domain.Object, 0, qty)
	for i := 0; i < qty; i++ {
		it := rec.Clone()
		it.UID = uuid.NewString()
		if it.ItemID == "" {
			it.ItemID = ref.Key
		}
		s.e.catalog.Register(it)
		items = append(items, it)
	}

	s.e.publish(ctx, event.NewPurchaseEvent(s.rm.RoomID, p.Name, event.SourceDescriptor, rec.Name, qty, total))
	return &economy.Purchase{
		Line:     domain.StockLine{ID: ref.Key, Name: rec.Name, BaseValue: price, Keywords: rec.Keywords},
		Quantity: qty,
		Total:    total,
		Items:    items,
	}, nil
}
