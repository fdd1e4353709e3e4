package equippable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rethesda/soulsy/internal/domain"
)

func TestIsTwoHanded(t *testing.T) {
	tests := []struct {
		name string
		item domain.Item
		want bool
	}{
		{"absent", nil, false},
		{"bow", weapon(domain.WeaponBow), true},
		{"crossbow", weapon(domain.WeaponCrossbow), true},
		{"greatsword", weapon(domain.WeaponTwoHandSword), true},
		{"battleaxe", weapon(domain.WeaponTwoHandAxe), true},
		{"sword", weapon(domain.WeaponOneHandSword), false},
		{"staff", weapon(domain.WeaponStaff), false},
		{"two-handed spell", &domain.Spell{Kind: domain.SpellKindSpell, TwoHanded: true}, true},
		{"one-handed spell", &domain.Spell{Kind: domain.SpellKindSpell}, false},
		{"shield", &domain.Armor{Shield: true}, false},
		{"potion", potion(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTwoHanded(tt.item))
		})
	}
}

func TestCanInstantCast(t *testing.T) {
	tests := []struct {
		name string
		item domain.Item
		slot domain.SlotType
		want bool
	}{
		{"fire and forget spell", spell(domain.SpellKindSpell, domain.CastingFireAndForget), domain.SlotMagic, true},
		{"leveled spell", spell(domain.SpellKindLeveledSpell, domain.CastingFireAndForget), domain.SlotMagic, true},
		{"concentration spell", spell(domain.SpellKindSpell, domain.CastingConcentration), domain.SlotMagic, false},
		{"scroll", &domain.Scroll{}, domain.SlotScroll, true},
		{"power", spell(domain.SpellKindPower, domain.CastingFireAndForget), domain.SlotPower, false},
		{"shout", &domain.Shout{}, domain.SlotShout, false},
		{"weapon", weapon(domain.WeaponOneHandSword), domain.SlotWeapon, false},
		{"non spell record in magic slot", weapon(domain.WeaponStaff), domain.SlotMagic, false},
		{"absent", nil, domain.SlotEmpty, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanInstantCast(tt.item, tt.slot))
		})
	}
}
