package actor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rethesda/soulsy/internal/domain"
	"github.com/rethesda/soulsy/internal/equippable"
	"github.com/rethesda/soulsy/internal/shout"
)

var (
	_ shout.EquipService = (*Registry)(nil)
	_ shout.ActorState   = (*Registry)(nil)
	_ equippable.Counter = (*InventoryCounter)(nil)
)

var (
	fusRoDah = &domain.Shout{Form: domain.Form{Spec: "Skyrim.esm|0x13E07", Name: "Unrelenting Force"}}
	highborn = &domain.Spell{Form: domain.Form{Spec: "Skyrim.esm|0xE40C8", Name: "Highborn"}, Kind: domain.SpellKindPower}
)

func TestRegistry_PlayerRegistered(t *testing.T) {
	r := NewRegistry()
	assert.True(t, r.Exists(domain.PlayerActor))
	assert.False(t, r.Exists("lydia"))
	assert.Nil(t, r.SelectedPower(domain.PlayerActor))
}

func TestRegistry_UnknownActor(t *testing.T) {
	r := NewRegistry()

	err := r.LearnShout("lydia", fusRoDah)
	assert.ErrorIs(t, err, domain.ErrActorNotFound)
	assert.False(t, r.KnowsShout("lydia", fusRoDah))

	r.EquipShout("lydia", fusRoDah)
	assert.Nil(t, r.SelectedPower("lydia"))
}

func TestRegistry_SelectPower(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.SelectPower(domain.PlayerActor, highborn))
	assert.Same(t, highborn, r.SelectedPower(domain.PlayerActor))

	err := r.SelectPower(domain.PlayerActor, &domain.Spell{Kind: domain.SpellKindSpell})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	r.UnequipSpell(domain.PlayerActor, highborn, shout.SlotLeft)
	assert.NotNil(t, r.SelectedPower(domain.PlayerActor), "hand slots do not hold powers")

	r.UnequipSpell(domain.PlayerActor, highborn, shout.SlotPower)
	assert.Nil(t, r.SelectedPower(domain.PlayerActor))
}

func TestRegistry_InventoryCounter(t *testing.T) {
	r := NewRegistry()
	potion := &domain.Alchemy{Form: domain.Form{Spec: "Skyrim.esm|0x3EADE"}}

	require.NoError(t, r.SetCount(domain.PlayerActor, potion.Spec, 4))
	counter := r.Counter(domain.PlayerActor)
	assert.Equal(t, 4, counter.InventoryCount(potion))
	assert.Equal(t, 0, counter.InventoryCount(nil))
	assert.Equal(t, 0, r.Counter("lydia").InventoryCount(potion))

	require.NoError(t, r.SetCount(domain.PlayerActor, potion.Spec, 0))
	assert.Equal(t, 0, counter.InventoryCount(potion))
}

func TestRegistry_DrivesController(t *testing.T) {
	r := NewRegistry()
	c := shout.NewController(r, r, nil)
	ctx := context.Background()

	assert.Equal(t, shout.OutcomeNotKnown, c.EquipShoutByForm(ctx, domain.PlayerActor, fusRoDah))

	require.NoError(t, r.LearnShout(domain.PlayerActor, fusRoDah))
	assert.Equal(t, shout.OutcomeEquipped, c.EquipShoutByForm(ctx, domain.PlayerActor, fusRoDah))
	assert.Equal(t, shout.OutcomeAlreadyEquipped, c.EquipShoutByForm(ctx, domain.PlayerActor, fusRoDah))
	assert.Equal(t, shout.ShoutSelected, c.Selected(domain.PlayerActor).Kind)

	assert.Equal(t, shout.OutcomeUnequippedShout, c.UnequipShoutSlot(ctx, domain.PlayerActor))
	assert.Equal(t, shout.NoneSelected, c.Selected(domain.PlayerActor).Kind)

	require.NoError(t, r.SelectPower(domain.PlayerActor, highborn))
	assert.Equal(t, shout.OutcomeUnequippedPower, c.UnequipShoutSlot(ctx, domain.PlayerActor))
	assert.Equal(t, shout.OutcomeNothingSelected, c.UnequipShoutSlot(ctx, domain.PlayerActor))
}
