package domain

// Form carries the attributes every item record shares:
// - Spec: stable cross-session identifier ("form spec", e.g. "Skyrim.esm|0x12EB7")
// - Name: display name as reported by the game
// - Keywords: free-text keyword tags added by the base game or mods
type Form struct {
	Spec     string   `json:"form_spec"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords,omitempty"`
}

// Base returns the shared attributes. Variants inherit it through embedding.
func (f *Form) Base() *Form { return f }

// Item is a read-only view of a game item definition. It is a closed set:
// only the variants in this file implement it. A nil Item is an absent record.
type Item interface {
	Category() FormCategory
	Base() *Form
	sealed()
}

// Weapon is a weapon form. Bound weapons are conjured by spells.
type Weapon struct {
	Form
	Kind  WeaponKind `json:"kind"`
	Bound bool       `json:"bound"`
}

// Armor is an armor or clothing form, shields included.
type Armor struct {
	Form
	Weight ArmorWeight `json:"weight"`
	Shield bool        `json:"shield"`
	Slots  BipedSlot   `json:"slots"`
}

// IsClothing reports whether the armor has no weight class.
func (a *Armor) IsClothing() bool { return a.Weight == ArmorClothing }

// Effect is one magic effect on a spell or potion.
type Effect struct {
	School       ActorValue `json:"school"`
	Primary      ActorValue `json:"primary"`
	Secondary    ActorValue `json:"secondary"`
	Resist       ActorValue `json:"resist"`
	Cost         float64    `json:"cost"`
	MinimumSkill uint32     `json:"minimum_skill"`
	Hostile      bool       `json:"hostile"`
	Associated   string     `json:"associated,omitempty"`
}

// Spell is a spell form: castable spells, powers and lesser powers.
type Spell struct {
	Form
	Kind      SpellKind   `json:"kind"`
	Casting   CastingType `json:"casting"`
	TwoHanded bool        `json:"two_handed"`
	Effects   []Effect    `json:"effects,omitempty"`
}

// Shout is a dragon shout form.
type Shout struct {
	Form
}

// Alchemy is a potion, poison or food form.
type Alchemy struct {
	Form
	Food    bool     `json:"food"`
	Poison  bool     `json:"poison"`
	Effects []Effect `json:"effects,omitempty"`
}

// Scroll is a single-use spell scroll.
type Scroll struct {
	Form
}

// Ammo is an arrow or bolt.
type Ammo struct {
	Form
}

// Light is a torch or other held light source.
type Light struct {
	Form
}

// Other is any form type the overlay does not classify specially.
type Other struct {
	Form
}

func (*Weapon) Category() FormCategory  { return CategoryWeapon }
func (*Armor) Category() FormCategory   { return CategoryArmor }
func (*Spell) Category() FormCategory   { return CategorySpell }
func (*Shout) Category() FormCategory   { return CategoryShout }
func (*Alchemy) Category() FormCategory { return CategoryAlchemy }
func (*Scroll) Category() FormCategory  { return CategoryScroll }
func (*Ammo) Category() FormCategory    { return CategoryAmmo }
func (*Light) Category() FormCategory   { return CategoryLight }
func (*Other) Category() FormCategory   { return CategoryOther }

func (*Weapon) sealed()  {}
func (*Armor) sealed()   {}
func (*Spell) sealed()   {}
func (*Shout) sealed()   {}
func (*Alchemy) sealed() {}
func (*Scroll) sealed()  {}
func (*Ammo) sealed()    {}
func (*Light) sealed()   {}
func (*Other) sealed()   {}

// IsAbsent reports whether item is nil, including a typed nil pointer.
func IsAbsent(item Item) bool {
	if item == nil {
		return true
	}
	switch v := item.(type) {
	case *Weapon:
		return v == nil
	case *Armor:
		return v == nil
	case *Spell:
		return v == nil
	case *Shout:
		return v == nil
	case *Alchemy:
		return v == nil
	case *Scroll:
		return v == nil
	case *Ammo:
		return v == nil
	case *Light:
		return v == nil
	case *Other:
		return v == nil
	}
	return false
}

// SameForm reports whether two records refer to the same form.
// Identity is the stable form spec; two absent records are not the same form.
func SameForm(a, b Item) bool {
	if IsAbsent(a) || IsAbsent(b) {
		return false
	}
	return a.Base().Spec == b.Base().Spec
}

// CostliestEffect returns the effect with the highest cost; the first one
// wins ties. It returns nil when there are no effects.
func CostliestEffect(effects []Effect) *Effect {
	var best *Effect
	for i := range effects {
		if best == nil || effects[i].Cost > best.Cost {
			best = &effects[i]
		}
	}
	return best
}
