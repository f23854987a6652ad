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
)

// Messenger delivers private lines and room broadcasts.
type Messenger interface {
	Broadcaster
	SendToPlayer(ctx context.Context, name, message, channel string)
}

// FlavorSource looks up a keeper's bagging flavor.
type FlavorSource interface {
	Flavor(keeper string) domain.Flavor
}

// Delivery records where a purchased item ended up.
type Delivery struct {
	Method  string
	Slot    string
	BagUID  string
	Surface string
}

// Deliverer hands purchased items to players, bagging them when both hands
// are full.
type Deliverer struct {
	mirror    *room.Mirror
	messenger Messenger
	flavors   FlavorSource
	publisher event.Publisher
}

// NewDeliverer creates a Deliverer. publisher may be nil.
func NewDeliverer(mirror *room.Mirror, messenger Messenger, flavors FlavorSource, publisher event.Publisher) *Deliverer {
	if publisher == nil {
		publisher = event.Nop{}
	}
	return &Deliverer{mirror: mirror, messenger: messenger, flavors: flavors, publisher: publisher}
}

// Deliver gives item to p. A free hand (mainhand, then offhand) takes it
// directly. Otherwise it is put in a new bag that goes on the keeper's
// counter, or on the floor when the room has none. The room is saved before
// the buyer is told, and the buyer is told before the room.
func (d *Deliverer) Deliver(ctx context.Context, rm *room.Room, p *domain.Player, item domain.Object, keeper string) (Delivery, error) {
	log := logger.FromContext(ctx)

	if slot := p.FreeHand(); slot != "" {
		p.Hold(slot, item.UID)
		d.messenger.SendToPlayer(ctx, p.Name, fmt.Sprintf(MsgHandsYouFmt, keeper, item.Name), domain.ChannelMessage)

		res := Delivery{Method: DeliveryMethodHand, Slot: slot}
		d.finish(ctx, rm, p, item, res)
		return res, nil
	}

	flavor := domain.DefaultFlavor()
	if d.flavors != nil {
		flavor = d.flavors.Flavor(keeper)
	}
	vars := map[string]string{"player": p.Name, "npc": keeper, "item": item.Name}
	bag := newBag(flavor, vars, item)
	vars["bag"] = bag.Name

	res := Delivery{BagUID: bag.UID}
	if j := room.FindCounter(rm, flavor.CounterKey); j >= 0 {
		if err := d.mirror.ApplyStub(rm, j, func(o *domain.Object) {
			o.SetContents(domain.SlotOn, append(o.Contents(domain.SlotOn), bag.Clone()))
		}); err != nil {
			return res, err
		}
		res.Method = DeliveryMethodCounter
		res.Surface = rm.Data.Objects[j].Name
	} else {
		d.mirror.AddObject(rm, bag)
		res.Method = DeliveryMethodFloor
		res.Surface = FloorName
	}
	vars["counter"] = res.Surface

	// Committed either way: the item is in the bag even if the save fails.
	if err := d.mirror.Persist(ctx, rm); err != nil {
		log.Warn(LogMsgDeliveryNotSaved, "room_id", rm.RoomID, "error", err)
	}

	emote := Render(flavor.BaggingEmote, vars)
	d.messenger.SendToPlayer(ctx, p.Name, emote, domain.ChannelMessage)
	d.messenger.BroadcastToRoom(ctx, rm.RoomID, emote, domain.ChannelMessage, p.Name)

	d.finish(ctx, rm, p, item, res)
	return res, nil
}

func (d *Deliverer) finish(ctx context.Context, rm *room.Room, p *domain.Player, item domain.Object, res Delivery) {
	logger.FromContext(ctx).Info(LogMsgItemDelivered,
		"room_id", rm.RoomID, "item_uid", item.UID, "method", res.Method)
	if err := d.publisher.Publish(ctx, event.NewDeliveryEvent(rm.RoomID, p.Name, item.UID, res.Method)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err)
	}
}

func newBag(flavor domain.Flavor, vars map[string]string, item domain.Object) domain.Object {
	return domain.Object{
		UID:              uuid.NewString(),
		Name:             Render(flavor.BagName, vars),
		Description:      Render(flavor.BagDesc, vars),
		Keywords:         []string{"bag"},
		Type:             domain.ItemTypeContainer,
		IsContainer:      true,
		Capacity:         BagCapacity,
		ContainerStorage: map[string][]domain.Object{domain.SlotIn: {item.Clone()}},
	}
}

// Render substitutes {name} placeholders literally. Unknown placeholders are
// left as they are.
func Render(tmpl string, vars map[string]string) string {
	if tmpl == "" || len(vars) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
