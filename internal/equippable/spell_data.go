package equippable

import "github.com/rethesda/soulsy/internal/domain"

// SpellDataFor collects the display metadata of a spell from its costliest
// effect. A spell with no effects still reports its handedness.
func SpellDataFor(spell *domain.Spell) *domain.SpellData {
	if spell == nil {
		return nil
	}

	data := &domain.SpellData{
		Effect:    domain.AVNone,
		Secondary: domain.AVNone,
		TwoHanded: spell.TwoHanded,
		School:    domain.SchoolNone,
		Level:     domain.LevelNovice,
		Damage:    domain.DamageNone,
	}

	effect := domain.CostliestEffect(spell.Effects)
	if effect == nil {
		return data
	}

	data.Effect = effect.Primary
	data.Secondary = effect.Secondary
	data.School = domain.SchoolFromActorValue(spellSchool(effect))
	data.Level = domain.SpellLevelFromSkill(effect.MinimumSkill)
	data.Damage = domain.DamageTypeFromResist(effect.Resist)
	data.Associated = effect.Associated
	return data
}
