package item

import (
	"fmt"

	"github.com/rethesda/soulsy/internal/domain"
)

// Config is the JSON item catalog
type Config struct {
	Version     string `json:"version" validate:"required"`
	Description string `json:"description"`

	Items []Def `json:"items" validate:"dive"`
}

// Def is a single item record in the catalog
type Def struct {
	FormSpec string   `json:"form_spec" validate:"required,max=200"`
	Name     string   `json:"name" validate:"max=200"`
	Category string   `json:"category" validate:"required,oneof=weapon armor spell shout alchemy scroll ammo light other"`
	Keywords []string `json:"keywords,omitempty" validate:"dive,required"`
	Count    int      `json:"count,omitempty" validate:"min=0"`

	Weapon  *WeaponDef  `json:"weapon,omitempty"`
	Armor   *ArmorDef   `json:"armor,omitempty"`
	Spell   *SpellDef   `json:"spell,omitempty"`
	Alchemy *AlchemyDef `json:"alchemy,omitempty"`
}

// WeaponDef holds weapon fields
type WeaponDef struct {
	Kind  string `json:"kind" validate:"required"`
	Bound bool   `json:"bound,omitempty"`
}

// ArmorDef holds armor fields. Slots are engine biped slot numbers; an
// empty list means the record declares no coverage.
type ArmorDef struct {
	Weight string `json:"weight" validate:"required,oneof=light heavy clothing"`
	Shield bool   `json:"shield,omitempty"`
	Slots  []int  `json:"slots,omitempty" validate:"dive,min=30,max=61"`
}

// SpellDef holds spell fields
type SpellDef struct {
	Kind      string      `json:"kind" validate:"required"`
	Casting   string      `json:"casting" validate:"required,oneof=constant_effect fire_and_forget concentration scroll"`
	TwoHanded bool        `json:"two_handed,omitempty"`
	Effects   []EffectDef `json:"effects,omitempty" validate:"dive"`
}

// AlchemyDef holds potion, poison and food fields
type AlchemyDef struct {
	Food    bool        `json:"food,omitempty"`
	Poison  bool        `json:"poison,omitempty"`
	Effects []EffectDef `json:"effects,omitempty" validate:"dive"`
}

// EffectDef is one magic effect. Attributes are given by name
// ("Destruction", "ResistFrost"); empty names mean none.
type EffectDef struct {
	School       string  `json:"school,omitempty"`
	Primary      string  `json:"primary,omitempty"`
	Secondary    string  `json:"secondary,omitempty"`
	Resist       string  `json:"resist,omitempty"`
	Cost         float64 `json:"cost,omitempty" validate:"min=0"`
	MinimumSkill uint32  `json:"minimum_skill,omitempty"`
	Hostile      bool    `json:"hostile,omitempty"`
	Associated   string  `json:"associated,omitempty"`
}

// ToItem converts the definition into its domain variant
func (d *Def) ToItem() (domain.Item, error) {
	form := domain.Form{Spec: d.FormSpec, Name: d.Name, Keywords: d.Keywords}
	category := domain.ParseFormCategory(d.Category)

	switch category {
	case domain.CategoryWeapon:
		if d.Weapon == nil {
			return nil, fmt.Errorf(ErrFmtMissingVariant, domain.ErrInvalidItem, d.FormSpec, d.Category, "weapon")
		}
		kind, ok := domain.ParseWeaponKind(d.Weapon.Kind)
		if !ok {
			return nil, fmt.Errorf(ErrFmtUnknownWeaponKind, domain.ErrInvalidItem, d.FormSpec, d.Weapon.Kind)
		}
		return &domain.Weapon{Form: form, Kind: kind, Bound: d.Weapon.Bound}, nil

	case domain.CategoryArmor:
		if d.Armor == nil {
			return nil, fmt.Errorf(ErrFmtMissingVariant, domain.ErrInvalidItem, d.FormSpec, d.Category, "armor")
		}
		weight, ok := domain.ParseArmorWeight(d.Armor.Weight)
		if !ok {
			return nil, fmt.Errorf(ErrFmtUnknownArmorWeight, domain.ErrInvalidItem, d.FormSpec, d.Armor.Weight)
		}
		return &domain.Armor{Form: form, Weight: weight, Shield: d.Armor.Shield, Slots: bipedSlots(d.Armor.Slots)}, nil

	case domain.CategorySpell:
		if d.Spell == nil {
			return nil, fmt.Errorf(ErrFmtMissingVariant, domain.ErrInvalidItem, d.FormSpec, d.Category, "spell")
		}
		kind, ok := domain.ParseSpellKind(d.Spell.Kind)
		if !ok {
			return nil, fmt.Errorf(ErrFmtUnknownSpellKind, domain.ErrInvalidItem, d.FormSpec, d.Spell.Kind)
		}
		casting, ok := domain.ParseCastingType(d.Spell.Casting)
		if !ok {
			return nil, fmt.Errorf(ErrFmtUnknownCasting, domain.ErrInvalidItem, d.FormSpec, d.Spell.Casting)
		}
		return &domain.Spell{
			Form:      form,
			Kind:      kind,
			Casting:   casting,
			TwoHanded: d.Spell.TwoHanded,
			Effects:   effects(d.Spell.Effects),
		}, nil

	case domain.CategoryAlchemy:
		a := &domain.Alchemy{Form: form}
		if d.Alchemy != nil {
			a.Food = d.Alchemy.Food
			a.Poison = d.Alchemy.Poison
			a.Effects = effects(d.Alchemy.Effects)
		}
		return a, nil

	case domain.CategoryShout:
		return &domain.Shout{Form: form}, nil
	case domain.CategoryScroll:
		return &domain.Scroll{Form: form}, nil
	case domain.CategoryAmmo:
		return &domain.Ammo{Form: form}, nil
	case domain.CategoryLight:
		return &domain.Light{Form: form}, nil
	default:
		return &domain.Other{Form: form}, nil
	}
}

func bipedSlots(numbers []int) domain.BipedSlot {
	if len(numbers) == 0 {
		return domain.BipedNone
	}
	var mask domain.BipedSlot
	for _, n := range numbers {
		mask |= domain.BipedSlotFromNumber(n)
	}
	return mask
}

func effects(defs []EffectDef) []domain.Effect {
	if len(defs) == 0 {
		return nil
	}
	out := make([]domain.Effect, len(defs))
	for i, e := range defs {
		out[i] = domain.Effect{
			School:       domain.ParseActorValue(e.School),
			Primary:      domain.ParseActorValue(e.Primary),
			Secondary:    domain.ParseActorValue(e.Secondary),
			Resist:       domain.ParseActorValue(e.Resist),
			Cost:         e.Cost,
			MinimumSkill: e.MinimumSkill,
			Hostile:      e.Hostile,
			Associated:   e.Associated,
		}
	}
	return out
}
