package domain

import "encoding/json"

// SlotType is the coarse category an item occupies in the quick-equip overlay.
type SlotType int

const (
	SlotEmpty SlotType = iota
	SlotWeapon
	SlotShield
	SlotArmor
	SlotLantern
	SlotMask
	SlotMagic
	SlotPower
	SlotShout
	SlotConsumable
	SlotScroll
	SlotLight
	SlotMisc
)

// AllSlotTypes lists every slot type in declaration order.
var AllSlotTypes = []SlotType{
	SlotEmpty,
	SlotWeapon,
	SlotShield,
	SlotArmor,
	SlotLantern,
	SlotMask,
	SlotMagic,
	SlotPower,
	SlotShout,
	SlotConsumable,
	SlotScroll,
	SlotLight,
	SlotMisc,
}

var slotTypeNames = map[SlotType]string{
	SlotEmpty:      "empty",
	SlotWeapon:     "weapon",
	SlotShield:     "shield",
	SlotArmor:      "armor",
	SlotLantern:    "lantern",
	SlotMask:       "mask",
	SlotMagic:      "magic",
	SlotPower:      "power",
	SlotShout:      "shout",
	SlotConsumable: "consumable",
	SlotScroll:     "scroll",
	SlotLight:      "light",
	SlotMisc:       "misc",
}

func (s SlotType) String() string {
	if name, ok := slotTypeNames[s]; ok {
		return name
	}
	return slotTypeNames[SlotMisc]
}

// MarshalJSON writes the slot type by name.
func (s SlotType) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// HasCount reports whether items in this slot show a stack count.
func (s SlotType) HasCount() bool {
	return s == SlotConsumable || s == SlotScroll
}
