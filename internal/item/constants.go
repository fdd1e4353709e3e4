package item

// ConfigFileName is the default name of the item catalog
const ConfigFileName = "items.json"

// SchemaPath is the catalog schema inside the embedded filesystem
const SchemaPath = "schemas/items.schema.json"

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrFmtSchemaFailed         = "schema validation failed for %s: %w"
)

// Validation error messages
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
	ErrMsgCatalogEmpty   = "catalog is empty"
)

// Format strings for error construction
const (
	ErrFmtItemAtIndex        = "%w: item at index %d: %w"
	ErrFmtMissingVariant     = "%w: item '%s' of category %s needs a %s block"
	ErrFmtUnknownWeaponKind  = "%w: item '%s' has unknown weapon kind '%s'"
	ErrFmtUnknownArmorWeight = "%w: item '%s' has unknown armor weight '%s'"
	ErrFmtUnknownSpellKind   = "%w: item '%s' has unknown spell kind '%s'"
	ErrFmtUnknownCasting     = "%w: item '%s' has unknown casting type '%s'"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Item catalog loaded"
)
