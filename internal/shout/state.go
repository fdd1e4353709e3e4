package shout

import "github.com/rethesda/soulsy/internal/domain"

// EquipSlot is the hand slot argument of the engine's unequip-spell call.
type EquipSlot int

const (
	SlotLeft  EquipSlot = 0
	SlotRight EquipSlot = 1
	// SlotPower is the slot shared by powers and lesser powers.
	SlotPower EquipSlot = 2
)

// PowerKind is what currently occupies the actor's selected-power slot.
type PowerKind int

const (
	NoneSelected PowerKind = iota
	ShoutSelected
	SpellPowerSelected
)

func (k PowerKind) String() string {
	switch k {
	case ShoutSelected:
		return "shout"
	case SpellPowerSelected:
		return "spell_power"
	default:
		return "none"
	}
}

// PowerState is a snapshot of the selected-power slot. Item is nil when
// nothing is selected.
type PowerState struct {
	Kind PowerKind
	Item domain.Item
}

// Spec returns the stable identifier of the selected form, or "".
func (s PowerState) Spec() string {
	if domain.IsAbsent(s.Item) {
		return ""
	}
	return s.Item.Base().Spec
}

// stateOf derives the slot state from whatever the engine reports.
// Records that cannot occupy the slot read as nothing selected.
func stateOf(selected domain.Item) PowerState {
	if domain.IsAbsent(selected) {
		return PowerState{Kind: NoneSelected}
	}
	switch v := selected.(type) {
	case *domain.Shout:
		return PowerState{Kind: ShoutSelected, Item: v}
	case *domain.Spell:
		return PowerState{Kind: SpellPowerSelected, Item: v}
	default:
		return PowerState{Kind: NoneSelected}
	}
}

// Outcome reports how a transition resolved. Rejections are outcomes,
// not errors.
type Outcome string

const (
	OutcomeEquipped        Outcome = "equipped"
	OutcomeAlreadyEquipped Outcome = "already_equipped"
	OutcomeNotAShout       Outcome = "not_a_shout"
	OutcomeNotKnown        Outcome = "not_known"
	OutcomeUnequippedShout Outcome = "unequipped_shout"
	OutcomeUnequippedPower Outcome = "unequipped_power"
	OutcomeNothingSelected Outcome = "nothing_selected"
)

// Changed reports whether the outcome invoked the equip service.
func (o Outcome) Changed() bool {
	switch o {
	case OutcomeEquipped, OutcomeUnequippedShout, OutcomeUnequippedPower:
		return true
	default:
		return false
	}
}
