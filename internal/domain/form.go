package domain

// FormCategory is the coarse form type reported by the game's object model.
type FormCategory int

const (
	CategoryOther FormCategory = iota
	CategoryWeapon
	CategoryArmor
	CategorySpell
	CategoryShout
	CategoryAlchemy
	CategoryScroll
	CategoryAmmo
	CategoryLight
)

var categoryNames = map[FormCategory]string{
	CategoryOther:   "other",
	CategoryWeapon:  "weapon",
	CategoryArmor:   "armor",
	CategorySpell:   "spell",
	CategoryShout:   "shout",
	CategoryAlchemy: "alchemy",
	CategoryScroll:  "scroll",
	CategoryAmmo:    "ammo",
	CategoryLight:   "light",
}

func (c FormCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryOther]
}

// ParseFormCategory maps a category name back to its value.
// Unknown names resolve to CategoryOther.
func ParseFormCategory(name string) FormCategory {
	for c, n := range categoryNames {
		if n == name {
			return c
		}
	}
	return CategoryOther
}

// RelevantCategories are the form types the overlay can show at all.
var RelevantCategories = []FormCategory{
	CategoryAlchemy,
	CategoryAmmo,
	CategoryArmor,
	CategoryLight,
	CategoryScroll,
	CategoryShout,
	CategorySpell,
	CategoryWeapon,
}

// InventoryCategories are the relevant form types that live in an inventory.
// Spells and shouts are known, not carried.
var InventoryCategories = []FormCategory{
	CategoryAlchemy,
	CategoryAmmo,
	CategoryArmor,
	CategoryLight,
	CategoryScroll,
	CategoryWeapon,
}

// IsRelevant reports whether items of this category can appear in the overlay.
func (c FormCategory) IsRelevant() bool {
	return containsCategory(RelevantCategories, c)
}

// IsInventory reports whether items of this category are counted in an inventory.
func (c FormCategory) IsInventory() bool {
	return containsCategory(InventoryCategories, c)
}

func containsCategory(list []FormCategory, c FormCategory) bool {
	for _, candidate := range list {
		if candidate == c {
			return true
		}
	}
	return false
}

// WeaponKind is the engine's weapon animation type.
type WeaponKind int

const (
	WeaponHandToHand WeaponKind = iota
	WeaponOneHandSword
	WeaponOneHandDagger
	WeaponOneHandAxe
	WeaponOneHandMace
	WeaponTwoHandSword
	WeaponTwoHandAxe
	WeaponBow
	WeaponStaff
	WeaponCrossbow
)

var weaponKindNames = map[WeaponKind]string{
	WeaponHandToHand:    "hand_to_hand",
	WeaponOneHandSword:  "one_hand_sword",
	WeaponOneHandDagger: "one_hand_dagger",
	WeaponOneHandAxe:    "one_hand_axe",
	WeaponOneHandMace:   "one_hand_mace",
	WeaponTwoHandSword:  "two_hand_sword",
	WeaponTwoHandAxe:    "two_hand_axe",
	WeaponBow:           "bow",
	WeaponStaff:         "staff",
	WeaponCrossbow:      "crossbow",
}

func (k WeaponKind) String() string {
	if name, ok := weaponKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseWeaponKind maps a kind name back to its value.
func ParseWeaponKind(name string) (WeaponKind, bool) {
	for k, n := range weaponKindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// ArmorWeight is the armor type: light, heavy, or clothing.
type ArmorWeight int

const (
	ArmorLight ArmorWeight = iota
	ArmorHeavy
	ArmorClothing
)

var armorWeightNames = map[ArmorWeight]string{
	ArmorLight:    "light",
	ArmorHeavy:    "heavy",
	ArmorClothing: "clothing",
}

func (w ArmorWeight) String() string {
	if name, ok := armorWeightNames[w]; ok {
		return name
	}
	return "unknown"
}

// ParseArmorWeight maps a weight name back to its value.
func ParseArmorWeight(name string) (ArmorWeight, bool) {
	for w, n := range armorWeightNames {
		if n == name {
			return w, true
		}
	}
	return 0, false
}

// BipedSlot is a body-coverage bitmask. Bits 0-31 follow the engine's
// biped slots 30-61; BipedNone marks a record that declares no coverage.
type BipedSlot uint64

const (
	BipedHead          BipedSlot = 1 << 0  // 30
	BipedHair          BipedSlot = 1 << 1  // 31
	BipedBody          BipedSlot = 1 << 2  // 32
	BipedHands         BipedSlot = 1 << 3  // 33
	BipedForearms      BipedSlot = 1 << 4  // 34
	BipedAmulet        BipedSlot = 1 << 5  // 35
	BipedRing          BipedSlot = 1 << 6  // 36
	BipedFeet          BipedSlot = 1 << 7  // 37
	BipedCalves        BipedSlot = 1 << 8  // 38
	BipedShield        BipedSlot = 1 << 9  // 39
	BipedTail          BipedSlot = 1 << 10 // 40
	BipedLongHair      BipedSlot = 1 << 11 // 41
	BipedCirclet       BipedSlot = 1 << 12 // 42
	BipedEars          BipedSlot = 1 << 13 // 43
	BipedFaceJewelry   BipedSlot = 1 << 14 // 44
	BipedNeck          BipedSlot = 1 << 15 // 45
	BipedChestPrimary  BipedSlot = 1 << 16 // 46
	BipedBack          BipedSlot = 1 << 17 // 47
	BipedMisc1         BipedSlot = 1 << 18 // 48
	BipedPelvisPrimary BipedSlot = 1 << 19 // 49

	BipedNone BipedSlot = 1 << 32
)

// Covers reports whether any bit of part is set in the mask.
func (s BipedSlot) Covers(part BipedSlot) bool {
	return s&part != 0
}

// BipedSlotFromNumber converts an engine slot number (30-61) into its bit.
// Any other number maps to BipedNone.
func BipedSlotFromNumber(n int) BipedSlot {
	if n < 30 || n > 61 {
		return BipedNone
	}
	return 1 << uint(n-30)
}

// SpellKind is the spell record's type.
type SpellKind int

const (
	SpellKindSpell SpellKind = iota
	SpellKindDisease
	SpellKindPower
	SpellKindLesserPower
	SpellKindAbility
	SpellKindPoison
	SpellKindEnchantment
	SpellKindPotion
	SpellKindIngredient
	SpellKindLeveledSpell
	SpellKindAddiction
	SpellKindVoicePower
	SpellKindStaffEnchantment
	SpellKindScroll
)

var spellKindNames = map[SpellKind]string{
	SpellKindSpell:            "spell",
	SpellKindDisease:          "disease",
	SpellKindPower:            "power",
	SpellKindLesserPower:      "lesser_power",
	SpellKindAbility:          "ability",
	SpellKindPoison:           "poison",
	SpellKindEnchantment:      "enchantment",
	SpellKindPotion:           "potion",
	SpellKindIngredient:       "ingredient",
	SpellKindLeveledSpell:     "leveled_spell",
	SpellKindAddiction:        "addiction",
	SpellKindVoicePower:       "voice_power",
	SpellKindStaffEnchantment: "staff_enchantment",
	SpellKindScroll:           "scroll",
}

func (k SpellKind) String() string {
	if name, ok := spellKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseSpellKind maps a kind name back to its value.
func ParseSpellKind(name string) (SpellKind, bool) {
	for k, n := range spellKindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// IsCastable is true for the kinds that go in a hand: spells and leveled spells.
func (k SpellKind) IsCastable() bool {
	return k == SpellKindSpell || k == SpellKindLeveledSpell
}

// IsPower is true for the kinds that share the shout slot.
func (k SpellKind) IsPower() bool {
	return k == SpellKindPower || k == SpellKindLesserPower
}

// CastingType is how a spell is delivered once cast.
type CastingType int

const (
	CastingConstantEffect CastingType = iota
	CastingFireAndForget
	CastingConcentration
	CastingScroll
)

var castingTypeNames = map[CastingType]string{
	CastingConstantEffect: "constant_effect",
	CastingFireAndForget:  "fire_and_forget",
	CastingConcentration:  "concentration",
	CastingScroll:         "scroll",
}

func (c CastingType) String() string {
	if name, ok := castingTypeNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCastingType maps a casting type name back to its value.
func ParseCastingType(name string) (CastingType, bool) {
	for c, n := range castingTypeNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}
