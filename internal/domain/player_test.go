package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_CloneIsDeep(t *testing.T) {
	p := &Player{
		Name:      "Aria",
		Wealth:    Wealth{Silvers: 50},
		WornItems: map[string]string{SlotMainhand: "sword-1"},
		Inventory: []ItemRef{RefInline(Object{Name: "a leather pouch"})},
		Stats:     map[string]int{"LOG": 60},
	}

	snap := p.Clone()
	p.Wealth.Silvers = 0
	p.Hold(SlotOffhand, "shield-1")
	p.Inventory[0].Inline.Name = "a torn pouch"
	p.Stats["LOG"] = 10

	assert.Equal(t, 50, snap.Wealth.Silvers)
	assert.Equal(t, map[string]string{SlotMainhand: "sword-1"}, snap.WornItems)
	assert.Equal(t, "a leather pouch", snap.Inventory[0].Inline.Name)
	assert.Equal(t, 60, snap.Stat("log"))
}

func TestPlayer_FreeHandFillsBothHands(t *testing.T) {
	p := &Player{}
	assert.Equal(t, SlotMainhand, p.FreeHand())

	p.Hold(SlotMainhand, "a")
	assert.Equal(t, SlotOffhand, p.FreeHand())

	p.Hold(SlotOffhand, "b")
	assert.Empty(t, p.FreeHand())
}
