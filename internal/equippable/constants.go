package equippable

// Log messages
const (
	LogMsgTwoHandedNilItem = "Two-handed check on absent item, returning false"
	LogMsgIconFallback     = "No specific icon for item, using generic icon"
	LogMsgClassified       = "Item classified"
)
