package domain

// ActorID identifies an actor whose equip state is being managed.
type ActorID string

// PlayerActor is the id used for the player character.
const PlayerActor ActorID = "player"

// Classification is the finished record handed to the overlay layer.
// It is built fresh for every call and never mutated afterwards, so the
// overlay may cache it keyed by Spec.
type Classification struct {
	SlotType    SlotType   `json:"slot_type"`
	Icon        Icon       `json:"icon"`
	TwoHanded   bool       `json:"two_handed"`
	HasCount    bool       `json:"has_count"`
	Count       int        `json:"count"`
	InstantCast bool       `json:"instant_cast"`
	Spec        string     `json:"form_spec"`
	Name        string     `json:"name"`
	Spell       *SpellData `json:"spell,omitempty"`
}
