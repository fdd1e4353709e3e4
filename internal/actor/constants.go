package actor

// Error messages
const (
	ErrMsgNotAPower = "spell is not a power or lesser power"
)

// Log messages
const (
	LogMsgUnknownActor    = "Equip call for unregistered actor ignored"
	LogMsgHandSlotIgnored = "Hand slot unequip ignored"
)
