package equippable

import (
	"github.com/rethesda/soulsy/internal/domain"
	"github.com/rethesda/soulsy/internal/keyword"
)

// classifySlot is the ordered decision chain; the first matching rule wins.
func classifySlot(item domain.Item, keywords *keyword.Inspector) domain.SlotType {
	if domain.IsAbsent(item) {
		return domain.SlotEmpty
	}

	switch v := item.(type) {
	case *domain.Weapon:
		// Bound weapons fall through to the default rule.
		if !v.Bound {
			return domain.SlotWeapon
		}
	case *domain.Armor:
		return armorSlot(v, keywords)
	case *domain.Spell:
		if v.Kind.IsCastable() {
			return domain.SlotMagic
		}
		if v.Kind.IsPower() {
			return domain.SlotPower
		}
	case *domain.Shout:
		return domain.SlotShout
	case *domain.Alchemy:
		return domain.SlotConsumable
	case *domain.Scroll:
		return domain.SlotScroll
	case *domain.Ammo:
		return domain.SlotMisc
	case *domain.Light:
		return domain.SlotLight
	}

	return domain.SlotMisc
}

// armorSlot separates shields, lanterns and masks from plain armor.
// Lanterns are checked before masks: a clothing piece may look like both.
func armorSlot(armor *domain.Armor, keywords *keyword.Inspector) domain.SlotType {
	if armor.Shield {
		return domain.SlotShield
	}
	if isLantern(armor, keywords) {
		return domain.SlotLantern
	}
	if armor.IsClothing() && keywords.Has(armor, keyword.TagMaskDisplay) {
		return domain.SlotMask
	}
	return domain.SlotArmor
}

// isLantern matches two lantern mods: one tags its lanterns with a keyword
// and declares no body slot, the other uses no keyword but equips on slot 49.
// The grouping is clothing AND ((tag AND none AND NOT jewelry) OR pelvis).
func isLantern(armor *domain.Armor, keywords *keyword.Inspector) bool {
	if !armor.IsClothing() {
		return false
	}
	tagged := keywords.Has(armor, keyword.TagLantern) &&
		armor.Slots.Covers(domain.BipedNone) &&
		!armor.Slots.Covers(domain.BipedFaceJewelry)
	return tagged || armor.Slots.Covers(domain.BipedPelvisPrimary)
}
