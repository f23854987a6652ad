package economy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/room"
)

func sword() domain.Object {
	return domain.Object{UID: "sword-1", Name: "a short sword", Type: domain.ItemTypeWeapon, BaseValue: 40}
}

func counterRoom() *room.Room {
	return room.New("armory", room.Data{
		Name: "The Armory",
		Objects: []domain.Object{
			{UID: "npc-1", Name: "Bob", IsNPC: true, ShopData: &domain.ShopDescriptor{}},
			{UID: "counter-1", Name: "oak counter", Keywords: []string{"counter"}},
		},
	})
}

func TestDeliver_FreeHands(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		worn     map[string]string
		wantSlot string
	}{
		{"both hands free", nil, domain.SlotMainhand},
		{"mainhand busy", map[string]string{domain.SlotMainhand: "torch"}, domain.SlotOffhand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saver := new(MockSaver)
			messenger := new(MockMessenger)
			messenger.On("SendToPlayer", ctx, "Alice", "Bob hands you a short sword.", domain.ChannelMessage).Once()
			d := NewDeliverer(room.NewMirror(saver), messenger, nil, nil)
			p := &domain.Player{Name: "Alice", WornItems: tt.worn}
			rm := counterRoom()

			res, err := d.Deliver(ctx, rm, p, sword(), "Bob")

			require.NoError(t, err)
			assert.Equal(t, DeliveryMethodHand, res.Method)
			assert.Equal(t, tt.wantSlot, res.Slot)
			assert.Equal(t, "sword-1", p.WornItems[tt.wantSlot])
			assert.Empty(t, rm.Data.Objects[1].Contents(domain.SlotOn))
			messenger.AssertExpectations(t)
			saver.AssertNotCalled(t, "SaveRoom", mock.Anything, mock.Anything)
		})
	}
}

func TestDeliver_BagOnCounter(t *testing.T) {
	// ARRANGE
	ctx := context.Background()
	rm := counterRoom()
	saver := new(MockSaver)
	var order []string
	saver.On("SaveRoom", ctx, rm).Return(nil).Once().Run(func(mock.Arguments) { order = append(order, "save") })

	emote := "Bob places a short sword into a bag and sets it on the oak counter."
	messenger := new(MockMessenger)
	messenger.On("SendToPlayer", ctx, "Alice", emote, domain.ChannelMessage).Once().
		Run(func(mock.Arguments) { order = append(order, "private") })
	messenger.On("BroadcastToRoom", ctx, "armory", emote, domain.ChannelMessage, []string{"Alice"}).Once().
		Run(func(mock.Arguments) { order = append(order, "room") })

	d := NewDeliverer(room.NewMirror(saver), messenger, nil, nil)
	p := &domain.Player{Name: "Alice", WornItems: map[string]string{
		domain.SlotMainhand: "torch",
		domain.SlotOffhand:  "shield",
	}}

	// ACT
	res, err := d.Deliver(ctx, rm, p, sword(), "Bob")

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, DeliveryMethodCounter, res.Method)
	assert.Equal(t, "oak counter", res.Surface)
	assert.Equal(t, []string{"save", "private", "room"}, order)

	on := rm.Data.Objects[1].Contents(domain.SlotOn)
	require.Len(t, on, 1)
	bag := on[0]
	assert.Equal(t, res.BagUID, bag.UID)
	assert.Equal(t, "Alice's bag", bag.Name)
	assert.True(t, bag.IsContainer)
	assert.Equal(t, BagCapacity, bag.Capacity)
	require.Len(t, bag.Contents(domain.SlotIn), 1)
	assert.Equal(t, "sword-1", bag.Contents(domain.SlotIn)[0].UID)
	assert.Equal(t, on, rm.View.Objects[1].Contents(domain.SlotOn))

	assert.Equal(t, "torch", p.WornItems[domain.SlotMainhand])
	messenger.AssertExpectations(t)
}

func TestDeliver_BagOnFloor(t *testing.T) {
	ctx := context.Background()
	rm := room.New("alley", room.Data{Name: "Back Alley"})
	saver := new(MockSaver)
	saver.On("SaveRoom", ctx, rm).Return(errors.New("db down"))

	emote := "Bob places a short sword into a bag and sets it on the floor."
	messenger := new(MockMessenger)
	messenger.On("SendToPlayer", ctx, "Alice", emote, domain.ChannelMessage).Once()
	messenger.On("BroadcastToRoom", ctx, "alley", emote, domain.ChannelMessage, []string{"Alice"}).Once()

	d := NewDeliverer(room.NewMirror(saver), messenger, nil, nil)
	p := &domain.Player{Name: "Alice", WornItems: map[string]string{
		domain.SlotMainhand: "a", domain.SlotOffhand: "b",
	}}

	res, err := d.Deliver(ctx, rm, p, sword(), "Bob")

	require.NoError(t, err, "a failed save does not undo the delivery")
	assert.Equal(t, DeliveryMethodFloor, res.Method)
	require.Len(t, rm.Data.Objects, 1)
	require.Len(t, rm.View.Objects, 1)
	assert.Equal(t, res.BagUID, rm.Data.Objects[0].UID)
	messenger.AssertExpectations(t)
}

func TestDeliver_UsesKeeperFlavorCounter(t *testing.T) {
	ctx := context.Background()
	rm := counterRoom()
	rm.Data.Objects = append(rm.Data.Objects, domain.Object{UID: "shelf-1", Name: "a dusty shelf"})
	rm.Hydrate()

	saver := new(MockSaver)
	saver.On("SaveRoom", ctx, rm).Return(nil)
	messenger := new(MockMessenger)
	messenger.On("SendToPlayer", ctx, "Alice", mock.Anything, mock.Anything)
	messenger.On("BroadcastToRoom", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	d := NewDeliverer(room.NewMirror(saver), messenger, staticFlavors{"Grizelda": "shelf"}, nil)
	p := &domain.Player{Name: "Alice", WornItems: map[string]string{
		domain.SlotMainhand: "a", domain.SlotOffhand: "b",
	}}

	res, err := d.Deliver(ctx, rm, p, sword(), "Grizelda")

	require.NoError(t, err)
	assert.Equal(t, "a dusty shelf", res.Surface)
	assert.Len(t, rm.Data.Objects[2].Contents(domain.SlotOn), 1)
	assert.Empty(t, rm.Data.Objects[1].Contents(domain.SlotOn))
}

func TestRender(t *testing.T) {
	vars := map[string]string{"player": "Alice", "npc": "Bob"}

	assert.Equal(t, "Alice's bag", Render("{player}'s bag", vars))
	assert.Equal(t, "Bob sees {nobody}", Render("{npc} sees {nobody}", vars))
	assert.Equal(t, "", Render("", vars))
	assert.Equal(t, "{player}", Render("{player}", nil))
}
