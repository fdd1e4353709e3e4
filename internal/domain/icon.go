package domain

import "encoding/json"

// Icon is the display glyph chosen for an item within its slot type.
type Icon int

const (
	IconDefault Icon = iota

	// Weapons
	IconHandToHand
	IconSwordOneHanded
	IconRapier
	IconKatana
	IconDagger
	IconClaw
	IconAxeOneHanded
	IconMace
	IconWhip
	IconSwordTwoHanded
	IconPike
	IconAxeTwoHanded
	IconHalberd
	IconQuarterStaff
	IconBow
	IconStaff
	IconCrossbow

	// Spells
	IconAlteration
	IconConjuration
	IconDestruction
	IconDestructionFire
	IconDestructionFrost
	IconDestructionShock
	IconIllusion
	IconRestoration
	IconSpellDefault

	IconShout
	IconPower

	// Consumables
	IconFood
	IconPoisonDefault
	IconPotionHealth
	IconPotionStamina
	IconPotionMagicka
	IconPotionFireResist
	IconPotionShockResist
	IconPotionFrostResist
	IconPotionMagicResist
	IconPotionDefault

	// Armor and worn items
	IconShield
	IconArmorLight
	IconArmorHeavy
	IconArmorClothing
	IconLantern
	IconMask

	IconScroll
	IconTorch
)

var iconNames = map[Icon]string{
	IconDefault:           "icon_default",
	IconHandToHand:        "hand_to_hand",
	IconSwordOneHanded:    "sword_one_handed",
	IconRapier:            "rapier",
	IconKatana:            "katana",
	IconDagger:            "dagger",
	IconClaw:              "claw",
	IconAxeOneHanded:      "axe_one_handed",
	IconMace:              "mace",
	IconWhip:              "whip",
	IconSwordTwoHanded:    "sword_two_handed",
	IconPike:              "pike",
	IconAxeTwoHanded:      "axe_two_handed",
	IconHalberd:           "halberd",
	IconQuarterStaff:      "quarter_staff",
	IconBow:               "bow",
	IconStaff:             "staff",
	IconCrossbow:          "crossbow",
	IconAlteration:        "alteration",
	IconConjuration:       "conjuration",
	IconDestruction:       "destruction",
	IconDestructionFire:   "destruction_fire",
	IconDestructionFrost:  "destruction_frost",
	IconDestructionShock:  "destruction_shock",
	IconIllusion:          "illusion",
	IconRestoration:       "restoration",
	IconSpellDefault:      "spell_default",
	IconShout:             "shout",
	IconPower:             "power",
	IconFood:              "food",
	IconPoisonDefault:     "poison_default",
	IconPotionHealth:      "potion_health",
	IconPotionStamina:     "potion_stamina",
	IconPotionMagicka:     "potion_magicka",
	IconPotionFireResist:  "potion_fire_resist",
	IconPotionShockResist: "potion_shock_resist",
	IconPotionFrostResist: "potion_frost_resist",
	IconPotionMagicResist: "potion_magic_resist",
	IconPotionDefault:     "potion_default",
	IconShield:            "shield",
	IconArmorLight:        "armor_light",
	IconArmorHeavy:        "armor_heavy",
	IconArmorClothing:     "armor_clothing",
	IconLantern:           "lantern",
	IconMask:              "mask",
	IconScroll:            "scroll",
	IconTorch:             "torch",
}

func (i Icon) String() string {
	if name, ok := iconNames[i]; ok {
		return name
	}
	return iconNames[IconDefault]
}

// MarshalJSON writes the icon by name.
func (i Icon) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// iconsBySlot is the icon subset each slot type may resolve to.
// IconDefault is valid everywhere as the universal fallback.
var iconsBySlot = map[SlotType][]Icon{
	SlotWeapon: {
		IconHandToHand, IconSwordOneHanded, IconRapier, IconKatana,
		IconDagger, IconClaw, IconAxeOneHanded, IconMace, IconWhip,
		IconSwordTwoHanded, IconPike, IconAxeTwoHanded, IconHalberd,
		IconQuarterStaff, IconBow, IconStaff, IconCrossbow,
	},
	SlotMagic: {
		IconAlteration, IconConjuration, IconDestruction, IconDestructionFire,
		IconDestructionFrost, IconDestructionShock, IconIllusion,
		IconRestoration, IconSpellDefault,
	},
	SlotShout: {IconShout},
	SlotPower: {IconPower},
	SlotConsumable: {
		IconFood, IconPoisonDefault, IconPotionHealth, IconPotionStamina,
		IconPotionMagicka, IconPotionFireResist, IconPotionShockResist,
		IconPotionFrostResist, IconPotionMagicResist, IconPotionDefault,
	},
	SlotShield:  {IconShield},
	SlotArmor:   {IconArmorLight, IconArmorHeavy, IconArmorClothing},
	SlotLantern: {IconLantern},
	SlotMask:    {IconMask},
	SlotScroll:  {IconScroll},
	SlotLight:   {IconTorch},
	SlotMisc:    nil,
	SlotEmpty:   nil,
}

// IconsFor returns the icons a slot type may resolve to, IconDefault included.
func IconsFor(slot SlotType) []Icon {
	icons := make([]Icon, 0, len(iconsBySlot[slot])+1)
	icons = append(icons, IconDefault)
	return append(icons, iconsBySlot[slot]...)
}

// ValidFor reports whether the icon is consistent with the slot type.
func (i Icon) ValidFor(slot SlotType) bool {
	if i == IconDefault {
		return true
	}
	for _, candidate := range iconsBySlot[slot] {
		if candidate == i {
			return true
		}
	}
	return false
}
