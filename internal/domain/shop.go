package domain

// Default price modifiers for legacy shop descriptors.
const (
	DefaultMarkup   = 1.2
	DefaultMarkdown = 0.5
)

// ShopDescriptor is the legacy shop block held by an NPC (shop_data) or by the room itself.
type ShopDescriptor struct {
	Name      string    `json:"name,omitempty"`
	Inventory []ItemRef `json:"inventory"`
	Markup    float64   `json:"markup,omitempty"`
	Markdown  *float64  `json:"markdown,omitempty"`
	WillBuy   []string  `json:"will_buy,omitempty"`

	// SoldCounts counts items bought back from players, per category.
	SoldCounts map[Category]int `json:"sold_counts,omitempty"`
}

// EffectiveMarkup returns the markup, falling back to DefaultMarkup when unset.
func (s *ShopDescriptor) EffectiveMarkup() float64 {
	if s == nil || s.Markup == 0 {
		return DefaultMarkup
	}
	return s.Markup
}

// EffectiveMarkdown returns the markdown, falling back to DefaultMarkdown when unset.
func (s *ShopDescriptor) EffectiveMarkdown() float64 {
	if s == nil || s.Markdown == nil {
		return DefaultMarkdown
	}
	return *s.Markdown
}

// BuysItem reports whether the shop accepts key in trade.
func (s *ShopDescriptor) BuysItem(key string) bool {
	if s == nil {
		return false
	}
	for _, k := range s.WillBuy {
		if k == key {
			return true
		}
	}
	return false
}

// Clone deep-copies the descriptor.
func (s *ShopDescriptor) Clone() *ShopDescriptor {
	if s == nil {
		return nil
	}
	c := *s
	c.Inventory = CloneRefs(s.Inventory)
	if s.WillBuy != nil {
		c.WillBuy = append([]string(nil), s.WillBuy...)
	}
	if s.Markdown != nil {
		md := *s.Markdown
		c.Markdown = &md
	}
	if s.SoldCounts != nil {
		c.SoldCounts = make(map[Category]int, len(s.SoldCounts))
		for k, v := range s.SoldCounts {
			c.SoldCounts[k] = v
		}
	}
	return &c
}

// StockLine is one entry of a controller-backed shop.
type StockLine struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name"`
	BaseValue int      `json:"base_value"`
	Qty       int      `json:"qty"`
	Keywords  []string `json:"keywords,omitempty"`
	Prototype *Object  `json:"prototype,omitempty"`
}

// Clone deep-copies the stock line.
func (l StockLine) Clone() StockLine {
	c := l
	if l.Keywords != nil {
		c.Keywords = append([]string(nil), l.Keywords...)
	}
	if l.Prototype != nil {
		p := l.Prototype.Clone()
		c.Prototype = &p
	}
	return c
}

// ControllerState is the persisted dynamic state of a controller-backed shop.
type ControllerState struct {
	KeeperName   string      `json:"keeper_name,omitempty"`
	Balance      int         `json:"balance"`
	LastTickTime float64     `json:"last_tick_time"`
	Inventory    []StockLine `json:"inventory"`
}

// Clone deep-copies the state.
func (s *ControllerState) Clone() *ControllerState {
	if s == nil {
		return nil
	}
	c := *s
	if s.Inventory != nil {
		c.Inventory = make([]StockLine, len(s.Inventory))
		for i, l := range s.Inventory {
			c.Inventory[i] = l.Clone()
		}
	}
	return &c
}

// Pool is a restock pool definition. Items are catalog keys or inline records.
type Pool struct {
	Interval float64   `json:"interval" yaml:"interval" validate:"gte=1"`
	MinItems int       `json:"min_items" yaml:"min_items" validate:"gte=0"`
	MaxItems int       `json:"max_items" yaml:"max_items" validate:"gtefield=MinItems"`
	Items    []ItemRef `json:"items" yaml:"items" validate:"min=1"`
	Message  string    `json:"message,omitempty" yaml:"message,omitempty"`
}

// Flavor holds per-keeper bagging templates. Templates use {player}, {npc},
// {item}, {bag} and {counter} placeholders.
type Flavor struct {
	BagName      string `json:"bag_name" yaml:"bag_name"`
	BagDesc      string `json:"bag_desc" yaml:"bag_desc"`
	BaggingEmote string `json:"bagging_emote" yaml:"bagging_emote"`
	CounterKey   string `json:"counter_key" yaml:"counter_key"`
}

// DefaultFlavor is used when no keeper entry matches.
func DefaultFlavor() Flavor {
	return Flavor{
		BagName:      "{player}'s bag",
		BagDesc:      "A simple bag with '{player}' written on it.",
		BaggingEmote: "{npc} places {item} into a bag and sets it on the {counter}.",
		CounterKey:   "counter",
	}
}
