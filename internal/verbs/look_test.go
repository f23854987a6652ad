package verbs

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/room"
)

func tavernRoom() *room.Room {
	return room.New("tavern", room.Data{
		Name:        "the prancing pony",
		Description: "A smoky common room.",
		Objects: []domain.Object{
			{UID: "npc-barl", Name: "Barliman", IsNPC: true},
			{UID: "table-1", Name: "small table", Keywords: []string{"table"}, TargetRoom: "tavern-table"},
			{
				UID:         "board-1",
				Name:        "notice board",
				Keywords:    []string{"board"},
				Description: "A board covered in notices.",
				Verbs:       []string{"read"},
				Details: []domain.Detail{
					{DC: 20, Text: "One notice offers a reward for a lost cat."},
					{DC: 80, Text: "A coded message is scratched into the frame."},
				},
			},
			{
				UID:         "chest-1",
				Name:        "iron chest",
				Keywords:    []string{"chest"},
				IsContainer: true,
				ContainerStorage: map[string][]domain.Object{
					domain.SlotIn: {{Name: "a copper ring"}},
				},
			},
			{UID: "shelf-1", Name: "wooden shelf", Keywords: []string{"shelf"}},
		},
		HiddenObjects: []domain.Object{
			{UID: "trap-1", Name: "trapdoor", Keywords: []string{"trapdoor"}, PerceptionDC: 50},
		},
	})
}

func TestLook_Room(t *testing.T) {
	h := newHarness(t)
	h.addRoom(tavernRoom())
	h.addPlayer("Alice", "tavern", 0)
	h.addPlayer("Carol", "tavern", 0)

	got := h.run(t, "Alice", "look")

	assert.Equal(t, "**The Prancing Pony**\n"+
		"A smoky common room.\n"+
		"You also see small table, notice board, iron chest, wooden shelf.\n"+
		"Also here: Barliman, Carol.", got)
}

func TestLook_At(t *testing.T) {
	h := newHarness(t)
	h.addRoom(tavernRoom())
	h.addPlayer("Alice", "tavern", 0)
	h.addPlayer("Carol", "tavern", 0)

	assert.Equal(t, "You see **notice board**.\nA board covered in notices.\nYou could try: read",
		h.run(t, "Alice", "look at board"))
	assert.Equal(t, "You see **wooden shelf**.\n"+MsgNondescript, h.run(t, "Alice", "l shelf"))
	assert.Equal(t, "You see **Carol**.", h.run(t, "Alice", "look carol"))
	assert.Equal(t, fmt.Sprintf(MsgNotHereFmt, "dragon"), h.run(t, "Alice", "look at dragon"))
}

func TestLook_AtOwnItem(t *testing.T) {
	h := newHarness(t)
	h.addRoom(tavernRoom())
	alice := h.addPlayer("Alice", "tavern", 0)
	h.catalog.Register(domain.Object{UID: "lute-1", Name: "a battered lute", Keywords: []string{"lute"}, Description: "It has four strings left."})
	alice.Hold(domain.SlotOffhand, "lute-1")

	assert.Equal(t, "You look at your **a battered lute**.\nIt has four strings left.", h.run(t, "Alice", "look lute"))
}

func TestLook_TableOccupancy(t *testing.T) {
	h := newHarness(t)
	h.addRoom(tavernRoom())
	h.addPlayer("Alice", "tavern", 0)

	assert.Equal(t, fmt.Sprintf(MsgTableEmptyFmt, "small table"), h.run(t, "Alice", "look on table"))

	h.addPlayer("Carol", "tavern-table", 0)
	assert.Equal(t, fmt.Sprintf(MsgTableOneFmt, "small table"), h.run(t, "Alice", "look on table"))

	h.addPlayer("Dave", "tavern-table", 0)
	assert.Equal(t, fmt.Sprintf(MsgTableManyFmt, 2, "small table"), h.run(t, "Alice", "look on table"))
}

func TestLook_TableOccupancy_ByTableRoomName(t *testing.T) {
	h := newHarness(t)
	rm := h.addRoom(tavernRoom())
	rm.View.Objects[1].TargetRoom = ""
	h.addRoom(room.New("booth", room.Data{Name: "Small Table", IsTableRoom: true}))
	h.addPlayer("Alice", "tavern", 0)
	h.addPlayer("Carol", "booth", 0)

	assert.Equal(t, fmt.Sprintf(MsgTableOneFmt, "small table"), h.run(t, "Alice", "look on table"))
}

func TestLook_OnShopTable(t *testing.T) {
	h := newHarness(t)
	h.stockSmithyCatalog()
	h.addRoom(smithyRoom())
	h.addPlayer("Alice", "smithy", 0)

	assert.Equal(t, "On the weapons table you see:\n"+fmt.Sprintf(MsgListLineFmt, "a short sword", 60),
		h.run(t, "Alice", "look on weapons"))
}

func TestLook_OnSurface(t *testing.T) {
	h := newHarness(t)
	rm := h.addRoom(tavernRoom())
	h.addPlayer("Alice", "tavern", 0)

	assert.Equal(t, fmt.Sprintf(MsgNothingOnFmt, "wooden shelf"), h.run(t, "Alice", "look on shelf"))

	rm.View.Objects[4].SetContents(domain.SlotOn, []domain.Object{{Name: "a clay jug"}})
	assert.Equal(t, "On the wooden shelf you see:\n- a clay jug", h.run(t, "Alice", "look on shelf"))
}

func TestLook_In(t *testing.T) {
	h := newHarness(t)
	h.addRoom(tavernRoom())
	h.addPlayer("Alice", "tavern", 0)

	assert.Equal(t, "In the iron chest you see:\n- a copper ring", h.run(t, "Alice", "look in chest"))
	assert.Equal(t, fmt.Sprintf(MsgNoContainerFmt, "shelf"), h.run(t, "Alice", "look in shelf"))
	assert.Equal(t, fmt.Sprintf(MsgNoContainerFmt, "barrel"), h.run(t, "Alice", "look in barrel"))
}

func TestLook_InDisplayCase_ShowsPrices(t *testing.T) {
	h := newHarness(t)
	h.addRoom(curioRoom())
	h.addPlayer("Alice", "curio", 0)

	assert.Equal(t, "In the a glass display case you see:\n"+fmt.Sprintf(MsgListLineFmt, "a blue gem", 60),
		h.run(t, "Alice", "look in case"))
}

func TestExamine_DetailsGatedByLogic(t *testing.T) {
	tests := []struct {
		name  string
		logic int
		want  []string
	}{
		{"dim", 10, []string{MsgNothingUnusual}},
		{"sharp", 50, []string{"One notice offers a reward for a lost cat."}},
		{"brilliant", 90, []string{
			"One notice offers a reward for a lost cat.",
			"A coded message is scratched into the frame.",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.addRoom(tavernRoom())
			alice := h.addPlayer("Alice", "tavern", 0)
			alice.Stats = map[string]int{domain.StatLogic: tt.logic}

			want := append([]string{"You examine the **notice board**.", "A board covered in notices."}, tt.want...)
			assert.Equal(t, joinLines(want), h.run(t, "Alice", "x board"))
		})
	}
}

func TestExamine_Usage(t *testing.T) {
	h := newHarness(t)
	h.addRoom(tavernRoom())
	h.addPlayer("Alice", "tavern", 0)

	assert.Equal(t, MsgExamineWhat, h.run(t, "Alice", "examine"))
	assert.Equal(t, fmt.Sprintf(MsgNotHereFmt, "dragon"), h.run(t, "Alice", "examine dragon"))
}

func TestInvestigate_RevealsHidden(t *testing.T) {
	h := newHarness(t)
	rm := h.addRoom(tavernRoom())
	h.addPlayer("Alice", "tavern", 0)
	h.roll = 60

	got := h.run(t, "Alice", "investigate")

	assert.Equal(t, MsgInvestigateRoom+"\n"+fmt.Sprintf(MsgRevealFmt, "trapdoor"), got)
	assert.Empty(t, rm.Data.HiddenObjects)
	require.GreaterOrEqual(t, room.FindObject(rm, "trapdoor"), 0)
	last := rm.Data.Objects[len(rm.Data.Objects)-1]
	assert.Equal(t, "trap-1", last.UID)
	h.saver.AssertCalled(t, "SaveRoom", mockAnything, rm)
}

func TestInvestigate_FailsRoll(t *testing.T) {
	h := newHarness(t)
	rm := h.addRoom(tavernRoom())
	h.addPlayer("Alice", "tavern", 0)
	h.roll = 10

	assert.Equal(t, MsgInvestigateRoom+"\n"+MsgInvestigateNoNew, h.run(t, "Alice", "investigate"))
	assert.Len(t, rm.Data.HiddenObjects, 1)
}

func TestInvestigate_SkillBonus(t *testing.T) {
	h := newHarness(t)
	h.addRoom(tavernRoom())
	alice := h.addPlayer("Alice", "tavern", 0)
	alice.Skills = map[string]int{domain.SkillInvestigation: 8}
	h.roll = 10

	// 11 + 40 clears 50
	assert.Equal(t, MsgInvestigateRoom+"\n"+fmt.Sprintf(MsgRevealFmt, "trapdoor"), h.run(t, "Alice", "investigate"))
}

func TestInvestigate_NothingHidden(t *testing.T) {
	h := newHarness(t)
	h.addRoom(room.New("field", room.Data{Name: "a field"}))
	h.addPlayer("Alice", "field", 0)

	assert.Equal(t, MsgInvestigateRoom+"\n"+MsgInvestigateNothing, h.run(t, "Alice", "investigate"))
}

func TestInvestigate_Roundtime(t *testing.T) {
	h := newHarness(t)
	h.addRoom(tavernRoom())
	alice := h.addPlayer("Alice", "tavern", 0)

	h.run(t, "Alice", "investigate board")
	assert.InDelta(t, float64(fixedNow.Unix())+3, alice.RoundtimeUntil, 0.001)

	h.clock = fixedNow.Add(time.Second)
	assert.Equal(t, fmt.Sprintf(MsgNotReadyFmt, 2.0), h.run(t, "Alice", "investigate"))

	h.clock = fixedNow.Add(3 * time.Second)
	assert.Contains(t, h.run(t, "Alice", "investigate board"), "You investigate the **notice board**.")
}
