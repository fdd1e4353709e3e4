package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgMissingPathParam  = "Missing %s path parameter"

	// Catalog
	ErrMsgInvalidCategory = "Invalid category '%s'. Valid options: relevant, inventory, or a form category name"
	ErrMsgClassifyFailed  = "Failed to classify item"

	// Actors
	ErrMsgRegisterActorFailed = "Failed to register actor"
	ErrMsgLearnShoutFailed    = "Failed to learn shout"
	ErrMsgSetInventoryFailed  = "Failed to set inventory"
	ErrMsgSelectPowerFailed   = "Failed to select power"
	ErrMsgEquipShoutFailed    = "Failed to equip shout"
	ErrMsgUnequipFailed       = "Failed to clear power slot"
	ErrMsgGetPowerFailed      = "Failed to read power slot"
	ErrMsgNotAShoutForm       = "Form is not a shout"

	ErrMsgInvalidSince    = "Invalid 'since' timestamp format (use RFC3339)"
	ErrMsgInvalidLimit    = "Invalid 'limit' (must be 1-1000)"
	ErrMsgGetEventsFailed = "Failed to retrieve events"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgItemNotFoundError  = "Item not found"
	ErrMsgActorNotFoundError = "Actor not found"
	ErrMsgInvalidItemError   = "Invalid item definition"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."
)

// Success messages
const (
	MsgActorRegistered  = "Actor registered"
	MsgShoutLearned     = "Shout learned"
	MsgInventoryUpdated = "Inventory updated"
	MsgPowerSelected    = "Power selected"
	MsgCacheCleared     = "Classification cache cleared"
)
