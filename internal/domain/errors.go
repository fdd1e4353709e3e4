package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound = "item not found"
	ErrMsgInvalidItem  = "invalid item definition"

	// Actor errors
	ErrMsgActorNotFound = "actor not found"

	// Keyword errors
	ErrMsgUnknownTag = "unknown keyword tag"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
// Classification and power switching never return errors; these belong to
// the loaders and the harness surface around them.
var (
	ErrItemNotFound  = errors.New(ErrMsgItemNotFound)
	ErrInvalidItem   = errors.New(ErrMsgInvalidItem)
	ErrActorNotFound = errors.New(ErrMsgActorNotFound)
	ErrUnknownTag    = errors.New(ErrMsgUnknownTag)
	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
)
