package item

// ==================== Configuration File Names ====================

const (
	// ConfigFileName is the name of the item catalog asset under DATA_PATH/items
	ConfigFileName = "items.json"

	// ItemsSchemaPath is the JSON schema the catalog asset must satisfy
	ItemsSchemaPath = "configs/schemas/items.schema.json"
)

// ==================== Error Messages ====================

const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgSchemaFailedFmt      = "schema validation failed for %s: %w"
)

const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// These format strings are used with fmt.Errorf for detailed error messages
const (
	ErrFmtItemEmptyKey      = "%w: item with empty key"
	ErrFmtItemEmptyName     = "%w: item '%s' has empty name"
	ErrFmtItemNegativeValue = "%w: item '%s' has negative base_value"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded = "Item catalog loaded"
)
