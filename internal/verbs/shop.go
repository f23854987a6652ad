package verbs

import (
	"context"
	"fmt"
	"strconv"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/economy"
	"github.com/osse101/MudShop_Go/internal/logger"
	"github.com/osse101/MudShop_Go/internal/room"
)

// shopSources lists the room's shops in the order `list` shows them and
// `buy` searches them: the controller, the room's descriptor, then its
// display cases.
func (e *Executor) shopSources(ctx context.Context, rm *room.Room) []ShopSource {
	var out []ShopSource
	if c, ok := e.shops.For(ctx, rm); ok {
		out = append(out, controllerShop{c: c})
	}
	if s := e.newDescriptorShop(rm); s != nil {
		out = append(out, s)
	}
	if s := e.newDisplayShop(rm); s != nil {
		out = append(out, s)
	}
	return out
}

// browseSource is the shop `list` shows and `buy <N>` indexes.
func (e *Executor) browseSource(ctx context.Context, rm *room.Room) ShopSource {
	if sources := e.shopSources(ctx, rm); len(sources) > 0 {
		return sources[0]
	}
	return nil
}

func (e *Executor) handleList(ctx context.Context, req *Request) error {
	src := e.browseSource(ctx, req.Room)
	if src == nil {
		return domain.ErrNoShop
	}

	listings := src.Listings()
	if len(listings) == 0 {
		e.reply(ctx, req.Player, MsgNothingForSale)
		return nil
	}

	if _, ok := src.(controllerShop); ok {
		lines := []string{MsgListHeader}
		for i, l := range listings {
			if l.Qty <= 0 {
				lines = append(lines, fmt.Sprintf(MsgOrderSoldOutFmt, i+1, l.Name, l.Price))
				continue
			}
			lines = append(lines, fmt.Sprintf(MsgOrderLineFmt, i+1, l.Name, l.Price, l.Qty))
		}
		lines = append(lines, MsgOrderHint)
		e.reply(ctx, req.Player, lines...)
		return nil
	}

	annotate := hasShopTable(req.Room)
	lines := []string{MsgListHeader, MsgListColumns, MsgListRule}
	for i, l := range listings {
		if i == ListLimit {
			break
		}
		if annotate && l.Record.Name != "" {
			lines = append(lines, fmt.Sprintf(MsgListTableFmt, l.Name, l.Price, economy.DisplayTableName(req.Room, &l.Record)))
			continue
		}
		lines = append(lines, fmt.Sprintf(MsgListLineFmt, l.Name, l.Price))
	}
	e.reply(ctx, req.Player, lines...)
	return nil
}

func hasShopTable(rm *room.Room) bool {
	for i := range rm.View.Objects {
		if _, ok := economy.TableCategory(&rm.View.Objects[i]); ok {
			return true
		}
	}
	return false
}

func (e *Executor) handleOrder(ctx context.Context, req *Request) error {
	c, ok := e.shops.For(ctx, req.Room)
	if !ok {
		return domain.ErrNoShop
	}

	qty, n, ok := parseOrder(req.Args)
	if !ok {
		e.reply(ctx, req.Player, MsgOrderUsage)
		return nil
	}
	return e.purchase(ctx, req, controllerShop{c: c}, n-1, qty)
}

// parseOrder reads "N" or "Q of N".
func parseOrder(args []string) (qty, n int, ok bool) {
	var err error
	switch {
	case len(args) == 1:
		qty = 1
		n, err = strconv.Atoi(args[0])
		return qty, n, err == nil
	case len(args) == 3 && args[1] == "of":
		if qty, err = strconv.Atoi(args[0]); err != nil {
			return 0, 0, false
		}
		n, err = strconv.Atoi(args[2])
		return qty, n, err == nil
	default:
		return 0, 0, false
	}
}

func (e *Executor) handleBuy(ctx context.Context, req *Request) error {
	if len(req.Args) == 0 {
		e.reply(ctx, req.Player, MsgBuyWhat)
		return nil
	}
	term := req.Target()

	if n, err := strconv.Atoi(term); err == nil {
		src := e.browseSource(ctx, req.Room)
		if src == nil {
			return domain.ErrNoShop
		}
		return e.purchase(ctx, req, src, n-1, 1)
	}

	sources := e.shopSources(ctx, req.Room)
	if len(sources) == 0 {
		return domain.ErrNoShop
	}
	for _, src := range sources {
		if i := src.FindByKeyword(term); i >= 0 {
			return e.purchase(ctx, req, src, i, 1)
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrNotForSale, term)
}

// purchase buys from src, confirms to the buyer, then delivers every item.
// Delivery problems do not undo the purchase.
func (e *Executor) purchase(ctx context.Context, req *Request, src ShopSource, index, qty int) error {
	pur, err := src.Purchase(ctx, req.Player, index, qty)
	if err != nil {
		return err
	}

	e.reply(ctx, req.Player, pur.Message())
	keeper := src.Keeper()
	for _, it := range pur.Items {
		if _, err := e.deliverer.Deliver(ctx, req.Room, req.Player, it, keeper); err != nil {
			logger.FromContext(ctx).Warn(LogMsgDeliveryFailed,
				"room_id", req.Room.RoomID, "item_uid", it.UID, "error", err)
		}
	}
	return nil
}
