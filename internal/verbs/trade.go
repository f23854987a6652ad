package verbs

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/economy"
	"github.com/osse101/MudShop_Go/internal/event"
	"github.com/osse101/MudShop_Go/internal/logger"
	"github.com/osse101/MudShop_Go/internal/room"
)

// carried is an item found on a player, either in a hand slot or in the
// pack at index invIdx.
type carried struct {
	slot   string
	invIdx int
	key    string
	rec    domain.Object
}

func (e *Executor) findInHands(p *domain.Player, term string) (carried, bool) {
	for _, slot := range []string{domain.SlotMainhand, domain.SlotOffhand} {
		uid := p.WornItems[slot]
		if uid == "" {
			continue
		}
		if rec, ok := e.catalog.Get(uid); ok && rec.MatchesTerm(term) {
			return carried{slot: slot, invIdx: -1, key: uid, rec: rec}, true
		}
	}
	return carried{}, false
}

func (e *Executor) findInInventory(p *domain.Player, term string) (carried, bool) {
	for i, ref := range p.Inventory {
		if rec, _, ok := ref.Resolve(e.catalog); ok && rec.MatchesTerm(term) {
			return carried{invIdx: i, key: ref.Key, rec: rec}, true
		}
	}
	return carried{}, false
}

// willBuy matches the shop's will_buy list against the catalog key the item
// is held under and the catalog key it was made from.
func willBuy(shop *domain.ShopDescriptor, key string, rec domain.Object) bool {
	if key != "" && shop.BuysItem(key) {
		return true
	}
	return rec.ItemID != "" && shop.BuysItem(rec.ItemID)
}

func (e *Executor) handleAppraise(ctx context.Context, req *Request) error {
	shop := room.ShopData(req.Room)
	if shop == nil {
		return domain.ErrNoShop
	}
	if len(req.Args) == 0 {
		e.reply(ctx, req.Player, MsgAppraiseWhat)
		return nil
	}

	term := req.Target()
	it, ok := e.findInHands(req.Player, term)
	if !ok {
		it, ok = e.findInInventory(req.Player, term)
	}
	if !ok {
		e.reply(ctx, req.Player, fmt.Sprintf(MsgDontHaveFmt, term))
		return nil
	}

	if !willBuy(shop, it.key, it.rec) {
		e.reply(ctx, req.Player, MsgAppraiseNoInterest)
		return nil
	}
	price := economy.Offer(it.rec, shop, e.intn)
	if price <= 0 {
		e.reply(ctx, req.Player, MsgAppraiseWorthless)
		return nil
	}
	e.reply(ctx, req.Player, fmt.Sprintf(MsgAppraiseOfferFmt, price, term))
	return nil
}

func (e *Executor) handleSell(ctx context.Context, req *Request) error {
	shop := room.ShopData(req.Room)
	if shop == nil {
		return domain.ErrNoShop
	}
	if len(req.Args) == 0 {
		e.reply(ctx, req.Player, MsgSellWhat)
		return nil
	}

	term := req.Target()
	if slices.Contains(backpackWords, term) {
		return e.sellBackpack(ctx, req, shop)
	}

	p := req.Player
	it, ok := e.findInHands(p, term)
	if !ok {
		e.reply(ctx, p, fmt.Sprintf(MsgNotHoldingFmt, term))
		return nil
	}
	if !willBuy(shop, it.key, it.rec) {
		return fmt.Errorf("%w: %s", domain.ErrNotInterested, it.rec.Name)
	}
	price := economy.Offer(it.rec, shop, e.intn)
	if price <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrWorthless, it.rec.Name)
	}

	delete(p.WornItems, it.slot)
	p.Wealth.Silvers += price
	e.recordSale(ctx, req, it.rec, price)
	_ = e.mirror.Persist(ctx, req.Room)

	e.reply(ctx, p, fmt.Sprintf(MsgSoldFmt, it.rec.Name, price))
	return nil
}

// sellBackpack offers every pack item the shop deals in. Items it would pay
// nothing for stay in the pack.
func (e *Executor) sellBackpack(ctx context.Context, req *Request, shop *domain.ShopDescriptor) error {
	p := req.Player
	lines := []string{MsgBackpackOffer}

	var (
		kept       []domain.ItemRef
		total      int
		interested bool
	)
	for _, ref := range p.Inventory {
		rec, _, ok := ref.Resolve(e.catalog)
		if !ok || !willBuy(shop, ref.Key, rec) {
			kept = append(kept, ref)
			continue
		}
		interested = true

		price := economy.Offer(rec, shop, e.intn)
		if price <= 0 {
			kept = append(kept, ref)
			continue
		}
		total += price
		e.recordSale(ctx, req, rec, price)
		lines = append(lines, fmt.Sprintf(MsgSoldFmt, rec.Name, price))
	}

	switch {
	case !interested:
		lines = append(lines, MsgBackpackNothing)
	case total == 0:
		lines = append(lines, MsgBackpackWorthless)
	default:
		p.Inventory = kept
		p.Wealth.Silvers += total
		lines = append(lines, fmt.Sprintf(MsgEarnedTotalFmt, total))
		_ = e.mirror.Persist(ctx, req.Room)
	}

	e.reply(ctx, p, lines...)
	return nil
}

// recordSale bumps the shop's sold count for the item's category so later
// offers in that category drop.
func (e *Executor) recordSale(ctx context.Context, req *Request, rec domain.Object, price int) {
	log := logger.FromContext(ctx)
	cat := rec.Category()

	if err := e.mirror.ApplyShop(req.Room, func(s *domain.ShopDescriptor) {
		if s.SoldCounts == nil {
			s.SoldCounts = make(map[domain.Category]int)
		}
		s.SoldCounts[cat]++
	}); err != nil {
		log.Warn(LogMsgSoldCountFailed, "room_id", req.Room.RoomID, "error", err)
	}

	log.Info(LogMsgItemSold, "room_id", req.Room.RoomID, "item", rec.Name, "price", price)
	e.publish(ctx, event.NewSaleEvent(req.Room.RoomID, req.Player.Name, rec.Name, price))
}
