package domain

// ActorValue is an engine attribute id. Values follow the engine numbering
// so records exported from the game can be read without translation.
type ActorValue int32

const (
	AVNone ActorValue = -1

	AVOneHanded   ActorValue = 6
	AVTwoHanded   ActorValue = 7
	AVArchery     ActorValue = 8
	AVBlock       ActorValue = 9
	AVSmithing    ActorValue = 10
	AVHeavyArmor  ActorValue = 11
	AVLightArmor  ActorValue = 12
	AVPickpocket  ActorValue = 13
	AVLockpicking ActorValue = 14
	AVSneak       ActorValue = 15
	AVAlchemy     ActorValue = 16
	AVSpeech      ActorValue = 17

	AVAlteration  ActorValue = 18
	AVConjuration ActorValue = 19
	AVDestruction ActorValue = 20
	AVIllusion    ActorValue = 21
	AVRestoration ActorValue = 22
	AVEnchanting  ActorValue = 23

	AVHealth      ActorValue = 24
	AVMagicka     ActorValue = 25
	AVStamina     ActorValue = 26
	AVHealRate    ActorValue = 27
	AVMagickaRate ActorValue = 28
	AVStaminaRate ActorValue = 29
	AVSpeedMult   ActorValue = 30

	AVDamageResist  ActorValue = 39
	AVPoisonResist  ActorValue = 40
	AVResistFire    ActorValue = 41
	AVResistShock   ActorValue = 42
	AVResistFrost   ActorValue = 43
	AVResistMagic   ActorValue = 44
	AVResistDisease ActorValue = 45

	AVHealRateMult    ActorValue = 104
	AVMagickaRateMult ActorValue = 105
	AVStaminaRateMult ActorValue = 106
)

var actorValueNames = map[ActorValue]string{
	AVNone:            "None",
	AVOneHanded:       "OneHanded",
	AVTwoHanded:       "TwoHanded",
	AVArchery:         "Archery",
	AVBlock:           "Block",
	AVSmithing:        "Smithing",
	AVHeavyArmor:      "HeavyArmor",
	AVLightArmor:      "LightArmor",
	AVPickpocket:      "Pickpocket",
	AVLockpicking:     "Lockpicking",
	AVSneak:           "Sneak",
	AVAlchemy:         "Alchemy",
	AVSpeech:          "Speech",
	AVAlteration:      "Alteration",
	AVConjuration:     "Conjuration",
	AVDestruction:     "Destruction",
	AVIllusion:        "Illusion",
	AVRestoration:     "Restoration",
	AVEnchanting:      "Enchanting",
	AVHealth:          "Health",
	AVMagicka:         "Magicka",
	AVStamina:         "Stamina",
	AVHealRate:        "HealRate",
	AVMagickaRate:     "MagickaRate",
	AVStaminaRate:     "StaminaRate",
	AVSpeedMult:       "SpeedMult",
	AVDamageResist:    "DamageResist",
	AVPoisonResist:    "PoisonResist",
	AVResistFire:      "ResistFire",
	AVResistShock:     "ResistShock",
	AVResistFrost:     "ResistFrost",
	AVResistMagic:     "ResistMagic",
	AVResistDisease:   "ResistDisease",
	AVHealRateMult:    "HealRateMult",
	AVMagickaRateMult: "MagickaRateMult",
	AVStaminaRateMult: "StaminaRateMult",
}

func (av ActorValue) String() string {
	if name, ok := actorValueNames[av]; ok {
		return name
	}
	return "Unknown"
}

// ParseActorValue maps an attribute name back to its id.
// Empty and unknown names resolve to AVNone.
func ParseActorValue(name string) ActorValue {
	for av, n := range actorValueNames {
		if n == name {
			return av
		}
	}
	return AVNone
}

// IsUnset reports whether no attribute was recorded. The zero value is
// treated as unset alongside AVNone because records built in code often
// leave the field empty.
func (av ActorValue) IsUnset() bool {
	return av == AVNone || av == 0
}
