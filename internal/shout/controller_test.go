package shout

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rethesda/soulsy/internal/domain"
	"github.com/rethesda/soulsy/internal/event"
)

const player = domain.PlayerActor

var (
	unrelentingForce = &domain.Shout{Form: domain.Form{Spec: "Skyrim.esm|0x13E07", Name: "Unrelenting Force"}}
	fireBreath       = &domain.Shout{Form: domain.Form{Spec: "Skyrim.esm|0x20E17", Name: "Fire Breath"}}
	highborn         = &domain.Spell{Form: domain.Form{Spec: "Skyrim.esm|0xE40C8", Name: "Highborn"}, Kind: domain.SpellKindPower}
)

// fakeActor is an in-memory actor whose selected power follows equip calls.
type fakeActor struct {
	mu       sync.Mutex
	selected domain.Item
	known    map[string]bool
	equips   int
}

func (f *fakeActor) SelectedPower(domain.ActorID) domain.Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selected
}

func (f *fakeActor) KnowsShout(_ domain.ActorID, shout *domain.Shout) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.known[shout.Spec]
}

func (f *fakeActor) EquipShout(_ domain.ActorID, shout *domain.Shout) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.equips++
	f.selected = shout
}

func (f *fakeActor) UnequipSpell(domain.ActorID, *domain.Spell, EquipSlot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selected = nil
}

func (f *fakeActor) UnequipShout(domain.ActorID, *domain.Shout) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selected = nil
}

func TestEquipShoutByForm_Idempotent(t *testing.T) {
	equip := new(MockEquipService)
	state := new(MockActorState)
	ctx := context.Background()

	state.On("SelectedPower", player).Return(nil).Once()
	state.On("SelectedPower", player).Return(unrelentingForce)
	state.On("KnowsShout", player, unrelentingForce).Return(true)
	equip.On("EquipShout", player, unrelentingForce).Return()

	c := NewController(equip, state, nil)

	assert.Equal(t, OutcomeEquipped, c.EquipShoutByForm(ctx, player, unrelentingForce))
	assert.Equal(t, OutcomeAlreadyEquipped, c.EquipShoutByForm(ctx, player, unrelentingForce))

	equip.AssertNumberOfCalls(t, "EquipShout", 1)
}

func TestEquipShoutByForm_Idempotent_StatefulActor(t *testing.T) {
	actor := &fakeActor{known: map[string]bool{unrelentingForce.Spec: true}}
	c := NewController(actor, actor, nil)
	ctx := context.Background()

	c.EquipShoutByForm(ctx, player, unrelentingForce)
	c.EquipShoutByForm(ctx, player, unrelentingForce)

	assert.Equal(t, 1, actor.equips)
	assert.Equal(t, ShoutSelected, c.Selected(player).Kind)
}

func TestEquipShoutByForm_Guards(t *testing.T) {
	tests := []struct {
		name     string
		target   domain.Item
		selected domain.Item
		knows    bool
		want     Outcome
	}{
		{"absent target", nil, nil, true, OutcomeNotAShout},
		{"power is not a shout", highborn, nil, true, OutcomeNotAShout},
		{"weapon is not a shout", &domain.Weapon{Kind: domain.WeaponBow}, nil, true, OutcomeNotAShout},
		{"typed nil shout", (*domain.Shout)(nil), nil, true, OutcomeNotAShout},
		{"unknown shout", fireBreath, nil, false, OutcomeNotKnown},
		{"already selected", fireBreath, fireBreath, false, OutcomeAlreadyEquipped},
		{"replaces another shout", fireBreath, unrelentingForce, true, OutcomeEquipped},
		{"replaces a power", fireBreath, highborn, true, OutcomeEquipped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			equip := new(MockEquipService)
			state := new(MockActorState)
			state.On("SelectedPower", player).Return(tt.selected).Maybe()
			state.On("KnowsShout", player, mock.Anything).Return(tt.knows).Maybe()
			equip.On("EquipShout", player, mock.Anything).Return().Maybe()

			c := NewController(equip, state, nil)
			got := c.EquipShoutByForm(context.Background(), player, tt.target)

			assert.Equal(t, tt.want, got)
			if tt.want == OutcomeEquipped {
				equip.AssertCalled(t, "EquipShout", player, tt.target)
			} else {
				equip.AssertNotCalled(t, "EquipShout", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestEquipShoutByForm_AlreadySelectedSkipsOwnershipCheck(t *testing.T) {
	equip := new(MockEquipService)
	state := new(MockActorState)
	state.On("SelectedPower", player).Return(fireBreath)

	c := NewController(equip, state, nil)
	assert.Equal(t, OutcomeAlreadyEquipped, c.EquipShoutByForm(context.Background(), player, fireBreath))

	state.AssertNotCalled(t, "KnowsShout", mock.Anything, mock.Anything)
}

func TestUnequipShoutSlot(t *testing.T) {
	t.Run("shout selected", func(t *testing.T) {
		equip := new(MockEquipService)
		state := new(MockActorState)
		state.On("SelectedPower", player).Return(unrelentingForce)
		equip.On("UnequipShout", player, unrelentingForce).Return()

		c := NewController(equip, state, nil)
		assert.Equal(t, OutcomeUnequippedShout, c.UnequipShoutSlot(context.Background(), player))

		equip.AssertExpectations(t)
		equip.AssertNotCalled(t, "UnequipSpell", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("power selected uses the power slot", func(t *testing.T) {
		equip := new(MockEquipService)
		state := new(MockActorState)
		state.On("SelectedPower", player).Return(highborn)
		equip.On("UnequipSpell", player, highborn, SlotPower).Return()

		c := NewController(equip, state, nil)
		assert.Equal(t, OutcomeUnequippedPower, c.UnequipShoutSlot(context.Background(), player))

		equip.AssertExpectations(t)
		equip.AssertNotCalled(t, "UnequipShout", mock.Anything, mock.Anything)
	})

	t.Run("nothing selected", func(t *testing.T) {
		equip := new(MockEquipService)
		state := new(MockActorState)
		state.On("SelectedPower", player).Return(nil)

		c := NewController(equip, state, nil)
		assert.Equal(t, OutcomeNothingSelected, c.UnequipShoutSlot(context.Background(), player))

		assert.Empty(t, equip.Calls)
	})
}

func TestSelected(t *testing.T) {
	state := new(MockActorState)
	state.On("SelectedPower", player).Return(highborn).Once()
	state.On("SelectedPower", player).Return(&domain.Scroll{}).Once()

	c := NewController(new(MockEquipService), state, nil)

	current := c.Selected(player)
	assert.Equal(t, SpellPowerSelected, current.Kind)
	assert.Equal(t, highborn.Spec, current.Spec())

	assert.Equal(t, NoneSelected, c.Selected(player).Kind)
	assert.Equal(t, "", PowerState{}.Spec())
}

func TestController_PublishesEvents(t *testing.T) {
	actor := &fakeActor{known: map[string]bool{fireBreath.Spec: true}}
	bus := new(MockBus)
	bus.On("Publish", mock.Anything, mock.MatchedBy(func(evt event.Event) bool {
		return evt.Type == event.PowerShoutEquipped
	})).Return(nil).Once()
	bus.On("Publish", mock.Anything, mock.MatchedBy(func(evt event.Event) bool {
		p, ok := evt.Payload.(event.PowerPayloadV1)
		return evt.Type == event.PowerUnequipped && ok && p.FormSpec == fireBreath.Spec && p.Outcome == string(OutcomeUnequippedShout)
	})).Return(errors.New("subscriber failed")).Once()

	c := NewController(actor, actor, bus)
	ctx := context.Background()

	assert.Equal(t, OutcomeEquipped, c.EquipShoutByForm(ctx, player, fireBreath))
	assert.Equal(t, OutcomeUnequippedShout, c.UnequipShoutSlot(ctx, player), "publish failures do not change the outcome")
	assert.Equal(t, OutcomeNothingSelected, c.UnequipShoutSlot(ctx, player))

	bus.AssertExpectations(t)
	bus.AssertNumberOfCalls(t, "Publish", 2)
}

func TestController_ConcurrentEquipSameActor(t *testing.T) {
	actor := &fakeActor{known: map[string]bool{fireBreath.Spec: true}}
	c := NewController(actor, actor, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.EquipShoutByForm(context.Background(), player, fireBreath)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, actor.equips)
}

func TestOutcomeChanged(t *testing.T) {
	assert.True(t, OutcomeEquipped.Changed())
	assert.True(t, OutcomeUnequippedPower.Changed())
	assert.False(t, OutcomeAlreadyEquipped.Changed())
	assert.False(t, OutcomeNothingSelected.Changed())
}
