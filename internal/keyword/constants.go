package keyword

// Error messages
const (
	ErrMsgReadFileFailed  = "failed to read keyword overrides file: %w"
	ErrMsgParseFileFailed = "failed to parse keyword overrides: %w"
	ErrFmtEmptyKeyword    = "keyword tag %q has an empty keyword string"
)

// Log messages
const (
	LogMsgOverridesLoaded = "Keyword overrides loaded"
)
