package equippable

import (
	"github.com/rethesda/soulsy/internal/domain"
	"github.com/rethesda/soulsy/internal/keyword"
)

// resolveIcon picks the display icon for an item already classified into
// slot. Every branch ends in a concrete icon; unknown combinations degrade
// to the category's generic icon.
func resolveIcon(slot domain.SlotType, item domain.Item, keywords *keyword.Inspector) domain.Icon {
	switch slot {
	case domain.SlotWeapon:
		return weaponIcon(item, keywords)
	case domain.SlotMagic:
		return spellIcon(item)
	case domain.SlotShout:
		return domain.IconShout
	case domain.SlotPower:
		return domain.IconPower
	case domain.SlotConsumable:
		return consumableIcon(item)
	case domain.SlotShield:
		return domain.IconShield
	case domain.SlotArmor:
		return armorIcon(item)
	case domain.SlotScroll:
		return domain.IconScroll
	case domain.SlotLight:
		return domain.IconTorch
	case domain.SlotLantern:
		return domain.IconLantern
	case domain.SlotMask:
		return domain.IconMask
	default:
		return domain.IconDefault
	}
}

// weaponIcon checks keyword overrides only for the weapon types that mods
// reuse for other shapes. The first matching keyword wins.
func weaponIcon(item domain.Item, keywords *keyword.Inspector) domain.Icon {
	weapon, ok := item.(*domain.Weapon)
	if !ok || weapon == nil {
		return domain.IconDefault
	}

	switch weapon.Kind {
	case domain.WeaponHandToHand:
		return domain.IconHandToHand
	case domain.WeaponOneHandSword:
		if keywords.Has(weapon, keyword.TagRapier) {
			return domain.IconRapier
		}
		if keywords.Has(weapon, keyword.TagKatana) {
			return domain.IconKatana
		}
		return domain.IconSwordOneHanded
	case domain.WeaponOneHandDagger:
		if keywords.Has(weapon, keyword.TagClaw) {
			return domain.IconClaw
		}
		return domain.IconDagger
	case domain.WeaponOneHandAxe:
		return domain.IconAxeOneHanded
	case domain.WeaponOneHandMace:
		if keywords.Has(weapon, keyword.TagWhip) {
			return domain.IconWhip
		}
		return domain.IconMace
	case domain.WeaponTwoHandSword:
		if keywords.Has(weapon, keyword.TagPike) {
			return domain.IconPike
		}
		return domain.IconSwordTwoHanded
	case domain.WeaponTwoHandAxe:
		if keywords.Has(weapon, keyword.TagHalberd) {
			return domain.IconHalberd
		}
		if keywords.Has(weapon, keyword.TagQuarterStaff) {
			return domain.IconQuarterStaff
		}
		return domain.IconAxeTwoHanded
	case domain.WeaponBow:
		return domain.IconBow
	case domain.WeaponStaff:
		return domain.IconStaff
	case domain.WeaponCrossbow:
		return domain.IconCrossbow
	}

	return domain.IconDefault
}

// spellSchool returns the attribute that governs the effect: its magic
// school, or its primary attribute when no school is recorded.
func spellSchool(effect *domain.Effect) domain.ActorValue {
	if effect.School.IsUnset() {
		return effect.Primary
	}
	return effect.School
}

func spellIcon(item domain.Item) domain.Icon {
	spell, ok := item.(*domain.Spell)
	if !ok || spell == nil {
		return domain.IconSpellDefault
	}

	effect := domain.CostliestEffect(spell.Effects)
	if effect == nil {
		return domain.IconSpellDefault
	}

	switch spellSchool(effect) {
	case domain.AVAlteration:
		return domain.IconAlteration
	case domain.AVConjuration:
		return domain.IconConjuration
	case domain.AVDestruction:
		switch effect.Resist {
		case domain.AVResistFire:
			return domain.IconDestructionFire
		case domain.AVResistFrost:
			return domain.IconDestructionFrost
		case domain.AVResistShock:
			return domain.IconDestructionShock
		default:
			return domain.IconDestruction
		}
	case domain.AVIllusion:
		return domain.IconIllusion
	case domain.AVRestoration:
		return domain.IconRestoration
	default:
		return domain.IconSpellDefault
	}
}

func consumableIcon(item domain.Item) domain.Icon {
	potion, ok := item.(*domain.Alchemy)
	if !ok || potion == nil {
		return domain.IconPotionDefault
	}
	if potion.Food {
		return domain.IconFood
	}
	if potion.Poison {
		return domain.IconPoisonDefault
	}
	return consumableIconByActorValue(PotionEffect(potion))
}

// PotionEffect returns the attribute of the potion's costliest beneficial
// effect, or AVNone when it has none.
func PotionEffect(potion *domain.Alchemy) domain.ActorValue {
	if potion == nil {
		return domain.AVNone
	}
	var best *domain.Effect
	for i := range potion.Effects {
		effect := &potion.Effects[i]
		if effect.Hostile {
			continue
		}
		if best == nil || effect.Cost > best.Cost {
			best = effect
		}
	}
	if best == nil {
		return domain.AVNone
	}
	return best.Primary
}

func consumableIconByActorValue(av domain.ActorValue) domain.Icon {
	switch av {
	case domain.AVHealth, domain.AVHealRateMult, domain.AVHealRate:
		return domain.IconPotionHealth
	case domain.AVStamina, domain.AVStaminaRateMult, domain.AVStaminaRate:
		return domain.IconPotionStamina
	case domain.AVMagicka, domain.AVMagickaRateMult, domain.AVMagickaRate:
		return domain.IconPotionMagicka
	case domain.AVResistFire:
		return domain.IconPotionFireResist
	case domain.AVResistShock:
		return domain.IconPotionShockResist
	case domain.AVResistFrost:
		return domain.IconPotionFrostResist
	case domain.AVResistMagic:
		return domain.IconPotionMagicResist
	default:
		return domain.IconPotionDefault
	}
}

func armorIcon(item domain.Item) domain.Icon {
	armor, ok := item.(*domain.Armor)
	if !ok || armor == nil {
		return domain.IconDefault
	}
	switch armor.Weight {
	case domain.ArmorLight:
		return domain.IconArmorLight
	case domain.ArmorHeavy:
		return domain.IconArmorHeavy
	case domain.ArmorClothing:
		return domain.IconArmorClothing
	default:
		return domain.IconDefault
	}
}
