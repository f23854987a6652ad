package domain

import (
	"maps"
	"strings"
)

// Hand slots checked, in order, when delivering a purchase.
const (
	SlotMainhand = "mainhand"
	SlotOffhand  = "offhand"
	SlotBack     = "back"
)

// Wealth is a player's purse.
type Wealth struct {
	Silvers int `json:"silvers"`
}

// Player is the subset of a player record this subsystem reads and writes.
type Player struct {
	Name           string            `json:"name"`
	CurrentRoomID  string            `json:"current_room_id"`
	Wealth         Wealth            `json:"wealth"`
	WornItems      map[string]string `json:"worn_items"`
	Inventory      []ItemRef         `json:"inventory"`
	Stats          map[string]int    `json:"stats,omitempty"`
	Skills         map[string]int    `json:"skills,omitempty"`
	RoundtimeUntil float64           `json:"roundtime_until,omitempty"`
}

// Clone returns a deep copy of the player record.
func (p *Player) Clone() Player {
	c := *p
	c.WornItems = maps.Clone(p.WornItems)
	c.Stats = maps.Clone(p.Stats)
	c.Skills = maps.Clone(p.Skills)
	c.Inventory = CloneRefs(p.Inventory)
	return c
}

// FreeHand returns the first empty hand slot, or "" when both are occupied.
func (p *Player) FreeHand() string {
	for _, slot := range []string{SlotMainhand, SlotOffhand} {
		if p.WornItems[slot] == "" {
			return slot
		}
	}
	return ""
}

// Hold places an item uid into a worn slot.
func (p *Player) Hold(slot, uid string) {
	if p.WornItems == nil {
		p.WornItems = make(map[string]string)
	}
	p.WornItems[slot] = uid
}

// Stat returns a named stat (e.g. LOG), 0 when unknown.
func (p *Player) Stat(name string) int {
	if p.Stats == nil {
		return 0
	}
	return p.Stats[strings.ToUpper(name)]
}

// CanAfford reports whether the player holds at least amount silver.
func (p *Player) CanAfford(amount int) bool {
	return amount >= 0 && p.Wealth.Silvers >= amount
}

// PlayerInfo is the world's lightweight view of a connected player.
type PlayerInfo struct {
	Name          string `json:"name"`
	CurrentRoomID string `json:"current_room_id"`
}
