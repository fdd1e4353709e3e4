package equippable

import (
	"log/slog"

	"github.com/rethesda/soulsy/internal/domain"
)

// IsTwoHanded reports whether the item occupies both hand slots.
func IsTwoHanded(item domain.Item) bool {
	if domain.IsAbsent(item) {
		slog.Warn(LogMsgTwoHandedNilItem)
		return false
	}

	switch v := item.(type) {
	case *domain.Spell:
		return v.TwoHanded
	case *domain.Weapon:
		switch v.Kind {
		case domain.WeaponTwoHandAxe, domain.WeaponTwoHandSword, domain.WeaponBow, domain.WeaponCrossbow:
			return true
		}
	}
	return false
}

// CanInstantCast reports whether the overlay may cast the item directly
// instead of equipping it first. Concentration spells hold the cast button
// for their whole duration and never qualify.
func CanInstantCast(item domain.Item, slot domain.SlotType) bool {
	switch slot {
	case domain.SlotMagic:
		spell, ok := item.(*domain.Spell)
		if !ok || spell == nil {
			return false
		}
		return spell.Kind.IsCastable() && spell.Casting != domain.CastingConcentration
	case domain.SlotScroll:
		return true
	default:
		return false
	}
}
