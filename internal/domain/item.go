package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ItemType classifies an item for display tables and pricing.
type ItemType string

const (
	ItemTypeWeapon    ItemType = "weapon"
	ItemTypeAmmo      ItemType = "ammo"
	ItemTypeArmor     ItemType = "armor"
	ItemTypeShield    ItemType = "shield"
	ItemTypeScroll    ItemType = "scroll"
	ItemTypePotion    ItemType = "potion"
	ItemTypeWand      ItemType = "wand"
	ItemTypeStaff     ItemType = "staff"
	ItemTypeContainer ItemType = "container"
	ItemTypeMisc      ItemType = "misc"
)

// Container slots used by room objects.
const (
	SlotIn = "in"
	SlotOn = "on"
)

// Detail is a hidden detail revealed by examine when the observer's LOG meets the DC.
type Detail struct {
	DC   int    `json:"dc" yaml:"dc"`
	Text string `json:"text" yaml:"text"`
}

// Object is a single world record. Items, NPCs, display cases, counters and
// tables all share this shape, the same way rooms store them.
type Object struct {
	UID         string   `json:"uid,omitempty" yaml:"uid,omitempty"`
	ItemID      string   `json:"item_id,omitempty" yaml:"item_id,omitempty"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// Item fields
	Type             ItemType            `json:"type,omitempty" yaml:"type,omitempty"`
	BaseValue        int                 `json:"base_value,omitempty" yaml:"base_value,omitempty"`
	MaxValue         int                 `json:"max_value,omitempty" yaml:"max_value,omitempty"`
	Weight           int                 `json:"weight,omitempty" yaml:"weight,omitempty"`
	Capacity         int                 `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	IsContainer      bool                `json:"is_container,omitempty" yaml:"is_container,omitempty"`
	ContainerStorage map[string][]Object `json:"container_storage,omitempty" yaml:"container_storage,omitempty"`
	WeaponType       string              `json:"weapon_type,omitempty" yaml:"weapon_type,omitempty"`
	ArmorType        string              `json:"armor_type,omitempty" yaml:"armor_type,omitempty"`
	Spell            string              `json:"spell,omitempty" yaml:"spell,omitempty"`

	// NPC / shop fields
	IsNPC    bool            `json:"is_npc,omitempty" yaml:"is_npc,omitempty"`
	ShopData *ShopDescriptor `json:"shop_data,omitempty" yaml:"shop_data,omitempty"`

	// Display case fields
	IsDynamicDisplay bool    `json:"is_dynamic_display,omitempty" yaml:"is_dynamic_display,omitempty"`
	RestockID        string  `json:"restock_id,omitempty" yaml:"restock_id,omitempty"`
	LastRestockTime  float64 `json:"last_restock_time,omitempty" yaml:"last_restock_time,omitempty"`

	// Table / perception fields
	TargetRoom   string   `json:"target_room,omitempty" yaml:"target_room,omitempty"`
	PerceptionDC int      `json:"perception_dc,omitempty" yaml:"perception_dc,omitempty"`
	Details      []Detail `json:"details,omitempty" yaml:"details,omitempty"`
	Verbs        []string `json:"verbs,omitempty" yaml:"verbs,omitempty"`
}

// Clone returns a deep copy of the object.
func (o Object) Clone() Object {
	c := o
	if o.Keywords != nil {
		c.Keywords = append([]string(nil), o.Keywords...)
	}
	if o.Verbs != nil {
		c.Verbs = append([]string(nil), o.Verbs...)
	}
	if o.Details != nil {
		c.Details = append([]Detail(nil), o.Details...)
	}
	if o.ContainerStorage != nil {
		c.ContainerStorage = make(map[string][]Object, len(o.ContainerStorage))
		for slot, items := range o.ContainerStorage {
			c.ContainerStorage[slot] = CloneObjects(items)
		}
	}
	if o.ShopData != nil {
		c.ShopData = o.ShopData.Clone()
	}
	return c
}

// CloneObjects deep-copies a slice of objects. A nil slice stays nil.
func CloneObjects(objs []Object) []Object {
	if objs == nil {
		return nil
	}
	out := make([]Object, len(objs))
	for i := range objs {
		out[i] = objs[i].Clone()
	}
	return out
}

// HasKeyword reports whether kw is one of the object's keywords (case-insensitive).
func (o *Object) HasKeyword(kw string) bool {
	kw = strings.ToLower(kw)
	for _, k := range o.Keywords {
		if strings.ToLower(k) == kw {
			return true
		}
	}
	return false
}

// MatchesTerm reports whether a player-typed term refers to this object:
// the term is part of the name or equals one of the keywords.
func (o *Object) MatchesTerm(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	if strings.Contains(strings.ToLower(o.Name), term) {
		return true
	}
	return o.HasKeyword(term)
}

// ContainsToken reports whether token appears in the name or keywords.
func (o *Object) ContainsToken(token string) bool {
	token = strings.ToLower(token)
	if strings.Contains(strings.ToLower(o.Name), token) {
		return true
	}
	for _, k := range o.Keywords {
		if strings.Contains(strings.ToLower(k), token) {
			return true
		}
	}
	return false
}

// Contents returns the items stored in the given container slot.
func (o *Object) Contents(slot string) []Object {
	if o.ContainerStorage == nil {
		return nil
	}
	return o.ContainerStorage[slot]
}

// SetContents replaces the items stored in the given container slot.
func (o *Object) SetContents(slot string, items []Object) {
	if o.ContainerStorage == nil {
		o.ContainerStorage = make(map[string][]Object)
	}
	o.ContainerStorage[slot] = items
}

// Category returns the display category used by shop tables.
func (o *Object) Category() Category {
	switch {
	case o.Type == ItemTypeWeapon || o.Type == ItemTypeAmmo || o.WeaponType != "":
		return CategoryWeapon
	case o.Type == ItemTypeArmor || o.Type == ItemTypeShield || o.ArmorType != "":
		return CategoryArmor
	case o.Type == ItemTypeScroll || o.Type == ItemTypePotion || o.Type == ItemTypeWand ||
		o.Type == ItemTypeStaff || o.Spell != "" || o.HasKeyword("scroll"):
		return CategoryMagic
	default:
		return CategoryMisc
	}
}

// Category is a shop table grouping.
type Category string

const (
	CategoryWeapon Category = "weapon"
	CategoryArmor  Category = "armor"
	CategoryMagic  Category = "magic"
	CategoryMisc   Category = "misc"
)

// ItemLookup resolves catalog keys to item records.
type ItemLookup interface {
	Get(key string) (Object, bool)
}

// ItemRef points at an item either by catalog key or by an inline record.
// On the wire it is a JSON string or a JSON object.
type ItemRef struct {
	Key    string
	Inline *Object
}

// RefByKey builds a catalog reference.
func RefByKey(key string) ItemRef {
	return ItemRef{Key: key}
}

// RefInline builds an inline reference holding a copy of obj.
func RefInline(obj Object) ItemRef {
	c := obj.Clone()
	return ItemRef{Inline: &c}
}

// IsInline reports whether the reference carries its own record.
func (r ItemRef) IsInline() bool {
	return r.Inline != nil
}

// Resolve returns the item record behind the reference and whether it was inline.
// ok is false when a catalog key does not resolve.
func (r ItemRef) Resolve(items ItemLookup) (rec Object, inline bool, ok bool) {
	if r.Inline != nil {
		return *r.Inline, true, true
	}
	if r.Key == "" || items == nil {
		return Object{}, false, false
	}
	rec, ok = items.Get(r.Key)
	return rec, false, ok
}

// BaseValue resolves the reference and returns its base value, 0 when unresolved.
func (r ItemRef) BaseValue(items ItemLookup) int {
	rec, _, ok := r.Resolve(items)
	if !ok {
		return 0
	}
	return rec.BaseValue
}

// Clone deep-copies the reference.
func (r ItemRef) Clone() ItemRef {
	if r.Inline == nil {
		return r
	}
	return RefInline(*r.Inline)
}

// MarshalJSON writes a key as a JSON string and an inline record as an object.
func (r ItemRef) MarshalJSON() ([]byte, error) {
	if r.Inline != nil {
		return json.Marshal(r.Inline)
	}
	return json.Marshal(r.Key)
}

// UnmarshalJSON accepts either a JSON string or a JSON object.
func (r *ItemRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = ItemRef{}
		return nil
	}
	switch data[0] {
	case '"':
		var key string
		if err := json.Unmarshal(data, &key); err != nil {
			return err
		}
		*r = ItemRef{Key: key}
		return nil
	case '{':
		var obj Object
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*r = ItemRef{Inline: &obj}
		return nil
	default:
		return fmt.Errorf("%w: item reference must be a string or an object", ErrInvalidInput)
	}
}

// CloneRefs deep-copies a slice of references.
func CloneRefs(refs []ItemRef) []ItemRef {
	if refs == nil {
		return nil
	}
	out := make([]ItemRef, len(refs))
	for i, r := range refs {
		out[i] = r.Clone()
	}
	return out
}
