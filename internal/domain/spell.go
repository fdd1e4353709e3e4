package domain

import "encoding/json"

// School is a magic school. Values match the school attribute ids.
type School int

const (
	SchoolNone        School = 0
	SchoolAlteration  School = School(AVAlteration)
	SchoolConjuration School = School(AVConjuration)
	SchoolDestruction School = School(AVDestruction)
	SchoolIllusion    School = School(AVIllusion)
	SchoolRestoration School = School(AVRestoration)
)

// SchoolFromActorValue converts a school attribute into a School.
func SchoolFromActorValue(av ActorValue) School {
	switch av {
	case AVAlteration, AVConjuration, AVDestruction, AVIllusion, AVRestoration:
		return School(av)
	default:
		return SchoolNone
	}
}

func (s School) String() string {
	switch s {
	case SchoolAlteration:
		return "alteration"
	case SchoolConjuration:
		return "conjuration"
	case SchoolDestruction:
		return "destruction"
	case SchoolIllusion:
		return "illusion"
	case SchoolRestoration:
		return "restoration"
	default:
		return "none"
	}
}

// MarshalJSON writes the school by name.
func (s School) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// DamageType is the element a spell deals, read from its resist attribute.
type DamageType string

const (
	DamageNone    DamageType = "none"
	DamageDisease DamageType = "disease"
	DamageFire    DamageType = "fire"
	DamageFrost   DamageType = "frost"
	DamageMagic   DamageType = "magic"
	DamagePoison  DamageType = "poison"
	DamageShock   DamageType = "shock"
)

// DamageTypeFromResist maps a resistance attribute to the damage it resists.
func DamageTypeFromResist(resist ActorValue) DamageType {
	switch resist {
	case AVResistFire:
		return DamageFire
	case AVResistFrost:
		return DamageFrost
	case AVResistShock:
		return DamageShock
	case AVResistMagic:
		return DamageMagic
	case AVResistDisease:
		return DamageDisease
	case AVPoisonResist:
		return DamagePoison
	default:
		return DamageNone
	}
}

// SpellLevel is the skill tier a spell belongs to.
type SpellLevel string

const (
	LevelNovice     SpellLevel = "novice"
	LevelApprentice SpellLevel = "apprentice"
	LevelAdept      SpellLevel = "adept"
	LevelExpert     SpellLevel = "expert"
	LevelMaster     SpellLevel = "master"
)

// SpellLevelFromSkill buckets a minimum skill requirement into a tier.
func SpellLevelFromSkill(skill uint32) SpellLevel {
	switch {
	case skill >= 100:
		return LevelMaster
	case skill >= 75:
		return LevelExpert
	case skill >= 50:
		return LevelAdept
	case skill >= 25:
		return LevelApprentice
	default:
		return LevelNovice
	}
}

// SpellData is the display metadata the overlay shows for a castable spell.
type SpellData struct {
	Effect     ActorValue `json:"effect"`
	Secondary  ActorValue `json:"secondary"`
	TwoHanded  bool       `json:"two_handed"`
	School     School     `json:"school"`
	Level      SpellLevel `json:"level"`
	Damage     DamageType `json:"damage"`
	Associated string     `json:"associated,omitempty"`
}
