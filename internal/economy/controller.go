package economy

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/event"
	"github.com/osse101/MudShop_Go/internal/logger"
	"github.com/osse101/MudShop_Go/internal/room"
	"github.com/osse101/MudShop_Go/internal/utils"
)

// Controller is the abstract-stock shop of one room. Its dynamic state lives
// in the room's data (shop_state) and is persisted with the room.
type Controller struct {
	mgr      *Manager
	room     *room.Room
	template Template
}

// Purchase is the outcome of a successful controller purchase.
type Purchase struct {
	Line     domain.StockLine
	Quantity int
	Total    int
	Items    []domain.Object
}

// Message is the confirmation line shown to the buyer.
func (p *Purchase) Message() string {
	return fmt.Sprintf(MsgPurchaseFmt, p.Quantity, p.Line.Name, p.Total)
}

// ensureState seeds shop_state from the template on first access.
func (c *Controller) ensureState(ctx context.Context) {
	if c.room.Data.ShopState != nil {
		return
	}

	balance := DefaultTemplateBalance
	if c.template.Balance != nil {
		balance = *c.template.Balance
	}
	inv := make([]domain.StockLine, len(c.template.Inventory))
	for i, l := range c.template.Inventory {
		inv[i] = l.Clone()
	}
	c.room.Data.ShopState = &domain.ControllerState{
		KeeperName:   room.KeeperName(c.room),
		Balance:      balance,
		LastTickTime: c.mgr.nowSeconds(),
		Inventory:    inv,
	}

	logger.FromContext(ctx).Info(LogMsgStateCreated, "room_id", c.room.RoomID, "lines", len(inv))
	_ = c.mgr.mirror.Persist(ctx, c.room)
}

func (c *Controller) state() *domain.ControllerState {
	return c.room.Data.ShopState
}

// KeeperName returns the name of the NPC tending the shop.
func (c *Controller) KeeperName() string {
	return room.KeeperName(c.room)
}

// Balance returns the shop's silver.
func (c *Controller) Balance() int {
	return c.state().Balance
}

// Inventory returns a copy of the current stock lines in display order.
func (c *Controller) Inventory() []domain.StockLine {
	inv := c.state().Inventory
	out := make([]domain.StockLine, len(inv))
	for i, l := range inv {
		out[i] = l.Clone()
	}
	return out
}

// FindItemIndexByKeyword returns the index of the first line whose name
// contains term or whose keywords include it, or -1.
func (c *Controller) FindItemIndexByKeyword(term string) int {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return -1
	}
	for i, l := range c.state().Inventory {
		if strings.Contains(strings.ToLower(l.Name), term) {
			return i
		}
		for _, k := range l.Keywords {
			if strings.ToLower(k) == term {
				return i
			}
		}
	}
	return -1
}

// BuyItem sells qty units of the line at index to p. Checks run in order:
// index, quantity, funds, stock. On success the player is debited, stock is
// decremented, and qty fresh items are returned and registered in the catalog.
func (c *Controller) BuyItem(ctx context.Context, index, qty int, p *domain.Player) (*Purchase, error) {
	log := logger.FromContext(ctx)
	st := c.state()

	if index < 0 || index >= len(st.Inventory) {
		return nil, fmt.Errorf(ErrMsgIndexFmt, domain.ErrNoSuchItem, index)
	}
	if qty <= 0 || qty > domain.MaxTransactionQuantity {
		return nil, fmt.Errorf(ErrMsgQuantityFmt, domain.ErrInvalidQuantity, qty)
	}

	line := &st.Inventory[index]
	total := line.BaseValue * qty
	if !p.CanAfford(total) {
		return nil, fmt.Errorf(ErrMsgCostFmt, domain.ErrCannotAfford, total, p.Wealth.Silvers)
	}
	if line.Qty < qty {
		return nil, fmt.Errorf(ErrMsgStockFmt, domain.ErrInsufficientStock, qty, line.Qty)
	}

	p.Wealth.Silvers -= total
	line.Qty -= qty

	items := make([]domain.Object, 0, qty)
	for i := 0; i < qty; i++ {
		it, err := c.instantiate(*line)
		if err != nil {
			p.Wealth.Silvers += total
			line.Qty += qty
			log.Warn(LogMsgPurchaseRefunded, "room_id", c.room.RoomID, "line", line.Name)
			return nil, err
		}
		items = append(items, it)
	}

	st.Balance += total
	for _, it := range items {
		c.mgr.catalog.Register(it)
	}
	// The sale stands even if the save fails; Persist logs the failure.
	_ = c.mgr.mirror.Persist(ctx, c.room)

	log.Info(LogMsgItemPurchased, "room_id", c.room.RoomID, "item", line.Name, "quantity", qty, "total", total)
	c.mgr.publish(ctx, event.NewPurchaseEvent(c.room.RoomID, p.Name, event.SourceController, line.Name, qty, total))

	return &Purchase{Line: line.Clone(), Quantity: qty, Total: total, Items: items}, nil
}

// instantiate builds one item from a stock line: its prototype, else the
// catalog record for its id, else a record made from the line itself.
func (c *Controller) instantiate(line domain.StockLine) (domain.Object, error) {
	var obj domain.Object
	switch {
	case line.Prototype != nil:
		obj = line.Prototype.Clone()
	case line.ID != "" && c.hasCatalogEntry(line.ID):
		obj, _ = c.mgr.catalog.Get(line.ID)
	case line.Name != "":
		obj = domain.Object{
			Name:      line.Name,
			BaseValue: line.BaseValue,
			Type:      domain.ItemTypeMisc,
		}
		if line.Keywords != nil {
			obj.Keywords = append([]string(nil), line.Keywords...)
		}
	default:
		return domain.Object{}, fmt.Errorf(ErrMsgTemplateLineFmt, domain.ErrTemplateMissing, line.ID)
	}

	if obj.Name == "" {
		obj.Name = line.Name
	}
	obj.UID = uuid.NewString()
	return obj, nil
}

func (c *Controller) hasCatalogEntry(key string) bool {
	if c.mgr.catalog == nil {
		return false
	}
	_, ok := c.mgr.catalog.Get(key)
	return ok
}

// Simulate drains and replenishes stock once DriftIntervalSeconds have passed
// since the last change. Lines not in the template are left alone.
func (c *Controller) Simulate(ctx context.Context, now float64) (bool, error) {
	st := c.state()
	if now-st.LastTickTime < DriftIntervalSeconds {
		return false, nil
	}

	changed := 0
	for i := range st.Inventory {
		line := &st.Inventory[i]
		if line.ID == "" {
			continue
		}
		maxQty, ok := c.template.MaxQty(line.ID)
		if !ok {
			continue
		}

		cur := line.Qty
		touched := false
		if cur > 0 && c.mgr.rnd() < DrainChance {
			line.Qty = max(0, cur-c.mgr.randInt(DrainMin, DrainMax))
			touched = true
		}
		if cur < maxQty && c.mgr.rnd() < ReplenishChance {
			line.Qty = min(maxQty, cur+c.mgr.randInt(ReplenishMin, ReplenishMax))
			touched = true
		}
		if touched {
			changed++
		}
	}

	if changed == 0 {
		return false, nil
	}

	st.LastTickTime = now
	if err := c.mgr.mirror.Persist(ctx, c.room); err != nil {
		return true, fmt.Errorf(ErrMsgPersistStateFmt, err)
	}
	logger.FromContext(ctx).Debug(LogMsgStockDrifted, "room_id", c.room.RoomID, "lines", changed)
	c.mgr.publish(ctx, event.NewDriftEvent(c.room.RoomID, changed))
	return true, nil
}

// CheckSchedule puts the keeper on duty at the given local hour behind the
// counter, sending the previous one home.
func (c *Controller) CheckSchedule(ctx context.Context, hour int) (bool, error) {
	target := c.template.Schedule.KeeperAt(hour)
	if target == nil || target.Name == "" {
		return false, nil
	}

	var messages []string
	needsSwap := true
	for j := range c.room.Data.Objects {
		o := &c.room.Data.Objects[j]
		if !o.IsNPC || o.ShopData == nil {
			continue
		}
		if o.Name == target.Name {
			needsSwap = false
			break
		}
		name := o.Name
		if _, err := c.mgr.mirror.RemoveStub(c.room, j); err != nil {
			return false, err
		}
		messages = append(messages, fmt.Sprintf(MsgShiftEndsFmt, name))
		break
	}

	if !needsSwap {
		return false, nil
	}

	c.mgr.mirror.AddObject(c.room, newShiftNPC(target))
	messages = append(messages, fmt.Sprintf(MsgShiftStartsFmt, target.Name))
	if st := c.state(); st != nil {
		st.KeeperName = target.Name
	}

	if err := c.mgr.mirror.Persist(ctx, c.room); err != nil {
		return true, fmt.Errorf(ErrMsgPersistStateFmt, err)
	}
	logger.FromContext(ctx).Info(LogMsgShiftChanged, "room_id", c.room.RoomID, "keeper", target.Name)
	for _, msg := range messages {
		c.mgr.broadcaster.BroadcastToRoom(ctx, c.room.RoomID, msg, domain.ChannelGeneral)
	}
	return true, nil
}

func newShiftNPC(k *ShiftKeeper) domain.Object {
	keywords := k.Keywords
	if len(keywords) == 0 {
		keywords = []string{DefaultNPCKeyword}
	}
	desc := k.Description
	if desc == "" {
		desc = fmt.Sprintf(DefaultNPCDescFmt, k.Name)
	}
	return domain.Object{
		UID:         uuid.NewString(),
		Name:        k.Name,
		Description: desc,
		Keywords:    append([]string(nil), keywords...),
		IsNPC:       true,
		ShopData:    &domain.ShopDescriptor{Name: k.Name},
		Verbs:       []string{"look", "talk to", "list", "order", "buy"},
	}
}

// RefreshDisplayCase fills an empty, non-dynamic "display case" in the room
// with up to DisplayCaseMax in-stock items, for show.
func (c *Controller) RefreshDisplayCase(ctx context.Context) (bool, error) {
	j := -1
	for k := range c.room.Data.Objects {
		o := &c.room.Data.Objects[k]
		if !o.IsDynamicDisplay && strings.Contains(strings.ToLower(o.Name), DisplayCaseToken) {
			j = k
			break
		}
	}
	if j < 0 || len(c.room.Data.Objects[j].Contents(domain.SlotIn)) > 0 {
		return false, nil
	}

	var inStock []domain.StockLine
	for _, l := range c.state().Inventory {
		if l.Qty > 0 {
			inStock = append(inStock, l)
		}
	}

	var items []domain.Object
	for _, idx := range utils.SampleIndices(len(inStock), DisplayCaseMax, c.mgr.intn) {
		it, err := c.instantiate(inStock[idx])
		if err != nil {
			continue
		}
		it.Description = strings.TrimSpace(it.Description + DisplayItemSuffix)
		items = append(items, it)
	}
	if len(items) == 0 {
		return false, nil
	}

	if err := c.mgr.mirror.ApplyStub(c.room, j, func(o *domain.Object) {
		o.SetContents(domain.SlotIn, domain.CloneObjects(items))
	}); err != nil {
		return false, err
	}
	if err := c.mgr.mirror.Persist(ctx, c.room); err != nil {
		return true, fmt.Errorf(ErrMsgPersistStateFmt, err)
	}
	logger.FromContext(ctx).Debug(LogMsgDisplayRefreshed, "room_id", c.room.RoomID, "count", len(items))
	return true, nil
}

// Tick runs the periodic controller upkeep: stock drift, shift schedule,
// and the display case.
func (c *Controller) Tick(ctx context.Context) error {
	now := c.mgr.now()
	if _, err := c.Simulate(ctx, c.mgr.nowSeconds()); err != nil {
		return err
	}
	if _, err := c.CheckSchedule(ctx, now.Hour()); err != nil {
		return err
	}
	_, err := c.RefreshDisplayCase(ctx)
	return err
}
