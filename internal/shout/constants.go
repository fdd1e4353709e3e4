package shout

// Log messages
const (
	LogMsgEquipRequested  = "Equipping shout"
	LogMsgNotAShout       = "Equip target is not a shout, ignoring"
	LogMsgAlreadyEquipped = "Shout already equipped, moving on"
	LogMsgShoutNotKnown   = "Actor does not know shout, ignoring"
	LogMsgShoutEquipped   = "Shout equipped"
	LogMsgUnequipping     = "Unequipping shout/power"
	LogMsgNothingSelected = "No shout or power selected"
	LogMsgPublishFailed   = "Failed to publish power slot event"
)
