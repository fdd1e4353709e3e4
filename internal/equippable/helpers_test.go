package equippable

import "github.com/rethesda/soulsy/internal/domain"

func form(spec, name string, keywords ...string) domain.Form {
	return domain.Form{Spec: spec, Name: name, Keywords: keywords}
}

func weapon(kind domain.WeaponKind, keywords ...string) *domain.Weapon {
	return &domain.Weapon{Form: form("Skyrim.esm|0x1", "Weapon", keywords...), Kind: kind}
}

func clothing(slots domain.BipedSlot, keywords ...string) *domain.Armor {
	return &domain.Armor{
		Form:   form("Skyrim.esm|0x2", "Clothing", keywords...),
		Weight: domain.ArmorClothing,
		Slots:  slots,
	}
}

func spell(kind domain.SpellKind, casting domain.CastingType, effects ...domain.Effect) *domain.Spell {
	return &domain.Spell{
		Form:    form("Skyrim.esm|0x3", "Spell"),
		Kind:    kind,
		Casting: casting,
		Effects: effects,
	}
}

func destruction(resist domain.ActorValue, cost float64) domain.Effect {
	return domain.Effect{
		School:    domain.AVDestruction,
		Primary:   domain.AVHealth,
		Secondary: domain.AVNone,
		Resist:    resist,
		Cost:      cost,
	}
}

func potion(effects ...domain.Effect) *domain.Alchemy {
	return &domain.Alchemy{Form: form("Skyrim.esm|0x4", "Potion"), Effects: effects}
}

func restore(av domain.ActorValue, cost float64) domain.Effect {
	return domain.Effect{School: domain.AVNone, Primary: av, Resist: domain.AVNone, Cost: cost}
}
