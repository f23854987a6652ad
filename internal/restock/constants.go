package restock

// Asset paths relative to ASSETS_PATH. The stock asset may be .json, .yaml
// or .yml.
const (
	StockAssetBase  = "economy/shop_stock"
	StockSchemaPath = "schemas/shop_stock.schema.json"
)

// Error formats
const (
	ErrMsgReadAssetFmt   = "failed to read shop stock asset %s: %w"
	ErrMsgParseAssetFmt  = "failed to parse shop stock asset %s: %w"
	ErrMsgSchemaFmt      = "shop stock asset %s failed schema validation: %w"
	ErrMsgParseEntryFmt  = "failed to parse entry %q: %w"
	ErrMsgInvalidPoolFmt = "invalid pool %q: %w"
)

// Log messages
const (
	LogMsgAssetLoadFailed = "Shop stock asset unavailable, display restocking disabled"
	LogMsgPoolsLoaded     = "Shop stock pools loaded"
	LogMsgPoolSkipped     = "Skipping invalid restock pool"
	LogMsgStubMissing     = "Display case has no persistent stub, skipping"
	LogMsgCaseRestocked   = "Display case restocked"
	LogMsgCaseAdopted     = "Display case adopted existing stock"
	LogMsgPublishFailed   = "Failed to publish restock event"
	LogMsgItemUnresolved  = "Restock pool item not in catalog, skipping"
)
