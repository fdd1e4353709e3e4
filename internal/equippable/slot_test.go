package equippable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rethesda/soulsy/internal/domain"
)

func TestClassifySlot(t *testing.T) {
	tests := []struct {
		name string
		item domain.Item
		want domain.SlotType
	}{
		{"absent", nil, domain.SlotEmpty},
		{"typed nil", (*domain.Spell)(nil), domain.SlotEmpty},
		{"sword", weapon(domain.WeaponOneHandSword), domain.SlotWeapon},
		{"bound bow", &domain.Weapon{Kind: domain.WeaponBow, Bound: true}, domain.SlotMisc},
		{"shield", &domain.Armor{Weight: domain.ArmorHeavy, Shield: true}, domain.SlotShield},
		{"light cuirass", &domain.Armor{Weight: domain.ArmorLight, Slots: domain.BipedBody}, domain.SlotArmor},
		{"plain clothing", clothing(domain.BipedBody), domain.SlotArmor},
		{"spell", spell(domain.SpellKindSpell, domain.CastingFireAndForget), domain.SlotMagic},
		{"leveled spell", spell(domain.SpellKindLeveledSpell, domain.CastingFireAndForget), domain.SlotMagic},
		{"power", spell(domain.SpellKindPower, domain.CastingFireAndForget), domain.SlotPower},
		{"lesser power", spell(domain.SpellKindLesserPower, domain.CastingFireAndForget), domain.SlotPower},
		{"ability", spell(domain.SpellKindAbility, domain.CastingConstantEffect), domain.SlotMisc},
		{"shout", &domain.Shout{}, domain.SlotShout},
		{"potion", potion(), domain.SlotConsumable},
		{"scroll", &domain.Scroll{}, domain.SlotScroll},
		{"arrow", &domain.Ammo{}, domain.SlotMisc},
		{"torch", &domain.Light{}, domain.SlotLight},
		{"other", &domain.Other{}, domain.SlotMisc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySlot(tt.item))
		})
	}
}

func TestClassifySlot_LanternBeforeMask(t *testing.T) {
	item := clothing(domain.BipedNone, "_WL_Lantern", "BOS_DisplayMaskKeyword")
	assert.Equal(t, domain.SlotLantern, ClassifySlot(item))
}

func TestClassifySlot_Mask(t *testing.T) {
	assert.Equal(t, domain.SlotMask, ClassifySlot(clothing(domain.BipedCirclet, "BOS_DisplayMaskKeyword")))

	heavy := &domain.Armor{Weight: domain.ArmorHeavy, Form: form("a", "b", "BOS_DisplayMaskKeyword")}
	assert.Equal(t, domain.SlotArmor, ClassifySlot(heavy), "mask marker only applies to clothing")
}

// The lantern rule reads clothing AND ((tag AND none AND NOT jewelry) OR pelvis).
// Each row flips one input to pin the grouping.
func TestClassifySlot_LanternGrouping(t *testing.T) {
	tests := []struct {
		name   string
		weight domain.ArmorWeight
		slots  domain.BipedSlot
		tagged bool
		want   domain.SlotType
	}{
		{"tag with none slot", domain.ArmorClothing, domain.BipedNone, true, domain.SlotLantern},
		{"tag without none slot", domain.ArmorClothing, domain.BipedBody, true, domain.SlotArmor},
		{"tag with none and jewelry", domain.ArmorClothing, domain.BipedNone | domain.BipedFaceJewelry, true, domain.SlotArmor},
		{"none slot without tag", domain.ArmorClothing, domain.BipedNone, false, domain.SlotArmor},
		{"pelvis without tag", domain.ArmorClothing, domain.BipedPelvisPrimary, false, domain.SlotLantern},
		{"pelvis with jewelry", domain.ArmorClothing, domain.BipedPelvisPrimary | domain.BipedFaceJewelry, false, domain.SlotLantern},
		{"pelvis on light armor", domain.ArmorLight, domain.BipedPelvisPrimary, false, domain.SlotArmor},
		{"tag and none on heavy armor", domain.ArmorHeavy, domain.BipedNone, true, domain.SlotArmor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			armor := &domain.Armor{Weight: tt.weight, Slots: tt.slots}
			if tt.tagged {
				armor.Keywords = []string{"_WL_Lantern"}
			}
			assert.Equal(t, tt.want, ClassifySlot(armor))
		})
	}
}

func TestBipedSlotFromNumber(t *testing.T) {
	assert.Equal(t, domain.BipedPelvisPrimary, domain.BipedSlotFromNumber(49))
	assert.Equal(t, domain.BipedFaceJewelry, domain.BipedSlotFromNumber(44))
	assert.Equal(t, domain.BipedHead, domain.BipedSlotFromNumber(30))
	assert.Equal(t, domain.BipedNone, domain.BipedSlotFromNumber(0))
	assert.Equal(t, domain.BipedNone, domain.BipedSlotFromNumber(62))
}
