package verbs

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/economy"
	"github.com/osse101/MudShop_Go/internal/logger"
	"github.com/osse101/MudShop_Go/internal/room"
	"github.com/osse101/MudShop_Go/internal/utils"
)

var titleCaser = cases.Title(language.English)

// handleLook covers `look`, `look [at] <target>`, `look on <surface>` and
// `look in <container>`.
func (e *Executor) handleLook(ctx context.Context, req *Request) error {
	if len(req.Args) == 0 {
		e.reply(ctx, req.Player, e.describeRoom(req)...)
		return nil
	}

	rest := strings.Join(req.Args[1:], " ")
	switch req.Args[0] {
	case "in":
		e.reply(ctx, req.Player, e.lookIn(req, strings.TrimPrefix(rest, "my "))...)
	case "on":
		e.reply(ctx, req.Player, e.lookOn(req, rest)...)
	case "at":
		e.reply(ctx, req.Player, e.lookAt(req, rest)...)
	default:
		e.reply(ctx, req.Player, e.lookAt(req, req.Target())...)
	}
	return nil
}

func (e *Executor) describeRoom(req *Request) []string {
	rm := req.Room
	lines := []string{"**" + titleCaser.String(rm.Name()) + "**"}
	if rm.Data.Description != "" {
		lines = append(lines, rm.Data.Description)
	}

	var things, people []string
	for i := range rm.View.Objects {
		o := &rm.View.Objects[i]
		if o.IsNPC {
			people = append(people, o.Name)
		} else {
			things = append(things, o.Name)
		}
	}
	for _, name := range e.world.RoomPlayers(rm.RoomID) {
		if !strings.EqualFold(name, req.Player.Name) {
			people = append(people, name)
		}
	}

	if len(things) > 0 {
		lines = append(lines, fmt.Sprintf(MsgAlsoSeeFmt, strings.Join(things, ", ")))
	}
	if len(people) > 0 {
		lines = append(lines, fmt.Sprintf(MsgAlsoHereFmt, strings.Join(people, ", ")))
	}
	return lines
}

func (e *Executor) lookAt(req *Request, target string) []string {
	if i := room.FindObject(req.Room, target); i >= 0 {
		obj := req.Room.View.Objects[i]
		lines := []string{fmt.Sprintf(MsgLookAtFmt, obj.Name), description(&obj)}
		if table, _ := e.tableLines(req.Room, &obj); table != nil {
			lines = append(lines, table...)
		}
		if len(obj.Verbs) > 0 {
			lines = append(lines, fmt.Sprintf(MsgTryVerbsFmt, strings.Join(obj.Verbs, ", ")))
		}
		return lines
	}

	it, ok := e.findInHands(req.Player, target)
	if !ok {
		it, ok = e.findInInventory(req.Player, target)
	}
	if ok {
		return []string{fmt.Sprintf(MsgLookAtOwnFmt, it.rec.Name), description(&it.rec)}
	}

	for _, name := range e.world.RoomPlayers(req.Room.RoomID) {
		if strings.EqualFold(name, target) {
			return []string{fmt.Sprintf(MsgLookAtFmt, name)}
		}
	}
	return []string{fmt.Sprintf(MsgNotHereFmt, target)}
}

func (e *Executor) lookOn(req *Request, target string) []string {
	i := room.FindObject(req.Room, target)
	if i < 0 {
		return []string{fmt.Sprintf(MsgNotHereFmt, target)}
	}
	obj := req.Room.View.Objects[i]

	if table, shop := e.tableLines(req.Room, &obj); table != nil {
		if shop {
			return append([]string{fmt.Sprintf(MsgOnSurfaceFmt, obj.Name)}, table...)
		}
		return table
	}

	on := obj.Contents(domain.SlotOn)
	if len(on) == 0 {
		return []string{fmt.Sprintf(MsgNothingOnFmt, obj.Name)}
	}
	lines := []string{fmt.Sprintf(MsgOnSurfaceFmt, obj.Name)}
	for _, it := range on {
		lines = append(lines, fmt.Sprintf(MsgItemLineFmt, it.Name))
	}
	return lines
}

func (e *Executor) lookIn(req *Request, target string) []string {
	i := room.FindObject(req.Room, target)
	if i < 0 {
		return []string{fmt.Sprintf(MsgNoContainerFmt, target)}
	}
	obj := req.Room.View.Objects[i]
	if !obj.IsContainer && !obj.IsDynamicDisplay && obj.Contents(domain.SlotIn) == nil {
		return []string{fmt.Sprintf(MsgNoContainerFmt, target)}
	}

	items := obj.Contents(domain.SlotIn)
	if len(items) == 0 {
		return []string{fmt.Sprintf(MsgEmptyFmt, obj.Name)}
	}

	lines := []string{fmt.Sprintf(MsgInContainerFmt, obj.Name)}
	shop := &domain.ShopDescriptor{Markup: e.displayMarkup}
	for _, it := range items {
		if obj.IsDynamicDisplay {
			lines = append(lines, fmt.Sprintf(MsgListLineFmt, it.Name, economy.BuyPrice(domain.RefInline(it), nil, shop)))
			continue
		}
		lines = append(lines, fmt.Sprintf(MsgItemLineFmt, it.Name))
	}
	return lines
}

// tableLines describes a table: the descriptor items of its category when
// the room is a shop, otherwise how many people sit at it. It returns nil
// for anything that is not a table.
func (e *Executor) tableLines(rm *room.Room, obj *domain.Object) ([]string, bool) {
	cat, ok := economy.TableCategory(obj)
	if !ok {
		return nil, false
	}

	shop := room.ShopData(rm)
	if shop == nil {
		return []string{e.occupancy(obj)}, false
	}

	var lines []string
	for _, ref := range shop.Inventory {
		rec, _, ok := ref.Resolve(e.catalog)
		if !ok || rec.Category() != cat {
			continue
		}
		lines = append(lines, fmt.Sprintf(MsgListLineFmt, rec.Name, economy.BuyPrice(ref, e.catalog, shop)))
	}
	if len(lines) == 0 {
		return []string{fmt.Sprintf(MsgTableNothingFmt, obj.Name)}, true
	}
	return lines, true
}

// occupancy counts the players at a table: those standing in its target
// room, or else in the first table-room named after it.
func (e *Executor) occupancy(obj *domain.Object) string {
	n := 0
	if obj.TargetRoom != "" {
		for _, info := range e.world.AllPlayers() {
			if info.CurrentRoomID == obj.TargetRoom {
				n++
			}
		}
	} else {
		for _, r := range e.world.ActiveRooms() {
			if r.Data.IsTableRoom && strings.EqualFold(r.Name(), obj.Name) {
				n = len(e.world.RoomPlayers(r.RoomID))
				break
			}
		}
	}

	switch n {
	case 0:
		return fmt.Sprintf(MsgTableEmptyFmt, obj.Name)
	case 1:
		return fmt.Sprintf(MsgTableOneFmt, obj.Name)
	default:
		return fmt.Sprintf(MsgTableManyFmt, n, obj.Name)
	}
}

func (e *Executor) handleExamine(ctx context.Context, req *Request) error {
	if len(req.Args) == 0 {
		e.reply(ctx, req.Player, MsgExamineWhat)
		return nil
	}
	target := strings.TrimPrefix(req.Target(), "at ")

	i := room.FindObject(req.Room, target)
	if i < 0 {
		e.reply(ctx, req.Player, fmt.Sprintf(MsgNotHereFmt, target))
		return nil
	}
	obj := req.Room.View.Objects[i]

	lines := examineLines(req.Player, &obj, MsgExamineFmt)
	if table, _ := e.tableLines(req.Room, &obj); table != nil {
		lines = append(lines, table...)
	}
	e.reply(ctx, req.Player, lines...)
	return nil
}

// examineLines shows the description plus every detail whose dc the
// player's LOG meets.
func examineLines(p *domain.Player, obj *domain.Object, headerFmt string) []string {
	lines := []string{fmt.Sprintf(headerFmt, obj.Name), description(obj)}

	logic := p.Stat(domain.StatLogic)
	found := false
	for _, d := range obj.Details {
		dc := d.DC
		if dc <= 0 {
			dc = DefaultDetailDC
		}
		if logic >= dc {
			lines = append(lines, d.Text)
			found = true
		}
	}
	if !found {
		lines = append(lines, MsgNothingUnusual)
	}
	return lines
}

func description(obj *domain.Object) string {
	if obj.Description == "" {
		return MsgNondescript
	}
	return obj.Description
}

// handleInvestigate examines a target, or with no target searches the room
// for hidden objects. Either way it costs a roundtime.
func (e *Executor) handleInvestigate(ctx context.Context, req *Request) error {
	p := req.Player
	now := e.nowSeconds()
	if now < p.RoundtimeUntil {
		e.reply(ctx, p, fmt.Sprintf(MsgNotReadyFmt, p.RoundtimeUntil-now))
		return nil
	}
	p.RoundtimeUntil = now + InvestigateRoundtime.Seconds()

	if len(req.Args) > 0 {
		target := strings.TrimPrefix(req.Target(), "at ")
		i := room.FindObject(req.Room, target)
		if i < 0 {
			e.reply(ctx, p, fmt.Sprintf(MsgNotHereFmt, target))
			return nil
		}
		obj := req.Room.View.Objects[i]
		e.reply(ctx, p, examineLines(p, &obj, MsgInvestigateObjFmt)...)
		return nil
	}

	rm := req.Room
	lines := []string{MsgInvestigateRoom}
	if len(rm.Data.HiddenObjects) == 0 {
		e.reply(ctx, p, append(lines, MsgInvestigateNothing)...)
		return nil
	}

	bonus := utils.SkillBonus(p.Skills[domain.SkillInvestigation])
	found := false
	for i := len(rm.Data.HiddenObjects) - 1; i >= 0; i-- {
		obj := rm.Data.HiddenObjects[i]
		dc := obj.PerceptionDC
		if dc <= 0 {
			dc = DefaultPerceptionDC
		}
		if e.intn(100)+1+bonus < dc {
			continue
		}

		rm.Data.HiddenObjects = slices.Delete(rm.Data.HiddenObjects, i, i+1)
		e.mirror.AddObject(rm, obj)
		found = true
		lines = append(lines, fmt.Sprintf(MsgRevealFmt, obj.Name))
		logger.FromContext(ctx).Info(LogMsgHiddenRevealed, "room_id", rm.RoomID, "object", obj.Name)
	}

	if found {
		_ = e.mirror.Persist(ctx, rm)
	} else {
		lines = append(lines, MsgInvestigateNoNew)
	}
	e.reply(ctx, p, lines...)
	return nil
}
