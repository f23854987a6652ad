package economy

// ==================== Tuning ====================

// Controller stock drift
const (
	DriftIntervalSeconds = 300.0
	DrainChance          = 0.1
	DrainMin             = 1
	DrainMax             = 3
	ReplenishChance      = 0.2
	ReplenishMin         = 1
	ReplenishMax         = 5
)

// Supply and demand on items bought back from players
const (
	SupplyDemandStep  = 0.05
	SupplyDemandFloor = 0.5
)

// Shift schedule defaults (local hours)
const (
	DefaultDayStart   = 6
	DefaultNightStart = 20
)

// Controller templates
const (
	DefaultTemplateBalance = 1000
	DefaultMaxQty          = 10
)

// Display case refresh
const (
	DisplayCaseToken  = "display case"
	DisplayCaseMax    = 3
	DisplayItemSuffix = " (On display)"
)

// Delivery
const (
	BagCapacity = 50
	FloorName   = "floor"

	DeliveryMethodHand    = "hand"
	DeliveryMethodCounter = "counter"
	DeliveryMethodFloor   = "floor"
)

// TemplateDir is the controller template directory under DATA_PATH.
const TemplateDir = "shops"

// ==================== Messages ====================

// Player-facing message formats
const (
	MsgPurchaseFmt    = "You buy %d x %s for %d silver."
	MsgHandsYouFmt    = "%s hands you %s."
	MsgShiftEndsFmt   = "%s finishes their shift."
	MsgShiftStartsFmt = "%s arrives to tend the shop."
)

// Shift keeper defaults
const (
	DefaultNPCKeyword = "shopkeeper"
	DefaultNPCDescFmt = "%s is here, tending the shop."
)

// DefaultDisplayTable names the surface used when no table matches an item.
const DefaultDisplayTable = "display table"

// ==================== Error Messages ====================

const (
	ErrMsgIndexFmt        = "%w: index %d"
	ErrMsgQuantityFmt     = "%w: %d"
	ErrMsgCostFmt         = "%w: cost %d, have %d"
	ErrMsgStockFmt        = "%w: %d requested, %d available"
	ErrMsgTemplateLineFmt = "%w: %q"
	ErrMsgPersistStateFmt = "failed to persist shop state: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgTemplateMissing   = "Shop template missing, starting with empty stock"
	LogMsgStateCreated      = "Shop state initialized from template"
	LogMsgItemPurchased     = "Controller item purchased"
	LogMsgPurchaseRefunded  = "Controller purchase refunded, item template missing"
	LogMsgStockDrifted      = "Shop stock drifted"
	LogMsgShiftChanged      = "Shopkeeper shift changed"
	LogMsgDisplayRefreshed  = "Shop display case refreshed"
	LogMsgItemDelivered     = "Item delivered"
	LogMsgDeliveryNotSaved  = "Delivery committed but room save failed"
	LogMsgPublishFailed     = "Failed to publish shop event"
	LogMsgControllerEvicted = "Shop controller evicted from cache"
)
