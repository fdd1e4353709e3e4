package validation

// Error messages
const (
	ErrMsgSchemaValidationFailed = "schema validation failed"

	ErrFmtReadDataFile       = "failed to read data file %s: %w"
	ErrFmtLoadSchema         = "failed to load schema %s: %w"
	ErrFmtParseData          = "failed to parse JSON data: %w"
	ErrFmtReadSchema         = "failed to read schema file: %w"
	ErrFmtParseSchema        = "failed to parse schema JSON: %w"
	ErrFmtAddResource        = "failed to add schema resource: %w"
	ErrFmtCompileSchema      = "failed to compile schema: %w"
	ErrFmtSchemaNotFound     = "schema file not found: %s"
	ErrFmtSchemaNotFoundFrom = "schema file not found: %s (searched from %s)"
)
