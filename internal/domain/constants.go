package domain

// Message channels understood by the transport layer
const (
	ChannelMessage = "message"
	ChannelGeneral = "general"
	ChannelAmbient = "ambient"
)

// Stat and skill keys
const (
	StatLogic          = "LOG"
	SkillInvestigation = "investigation"
)

// Well-known keywords
const (
	KeywordTable   = "table"
	KeywordCounter = "counter"
)

// DefaultKeeperName is used when a room has no shop-keeping NPC.
const DefaultKeeperName = "The Shopkeeper"

// MaxTransactionQuantity caps a single order.
const MaxTransactionQuantity = 100
