// Package shout manages the actor's single selected-power slot. Shouts and
// power spells share that slot even though the engine equips them through
// different calls; the Controller is the one place that hides the difference.
package shout

import (
	"context"

	"github.com/rethesda/soulsy/internal/concurrency"
	"github.com/rethesda/soulsy/internal/domain"
	"github.com/rethesda/soulsy/internal/event"
	"github.com/rethesda/soulsy/internal/logger"
)

// EquipService is the engine's equip mechanism. Calls are fire-and-forget:
// their effect is only observed by re-reading the selected power later.
type EquipService interface {
	EquipShout(actor domain.ActorID, shout *domain.Shout)
	UnequipSpell(actor domain.ActorID, spell *domain.Spell, slot EquipSlot)
	UnequipShout(actor domain.ActorID, shout *domain.Shout)
}

// ActorState answers questions about an actor's current equip state.
type ActorState interface {
	SelectedPower(actor domain.ActorID) domain.Item
	KnowsShout(actor domain.ActorID, shout *domain.Shout) bool
}

// Controller runs the power-slot transitions. Transitions for one actor are
// serialized; different actors proceed in parallel.
type Controller struct {
	equip EquipService
	state ActorState
	bus   event.Bus
	locks *concurrency.LockManager
}

// NewController creates a controller. bus may be nil.
func NewController(equip EquipService, state ActorState, bus event.Bus) *Controller {
	return &Controller{
		equip: equip,
		state: state,
		bus:   bus,
		locks: concurrency.NewLockManager(),
	}
}

// Selected reads the actor's selected-power slot.
func (c *Controller) Selected(actor domain.ActorID) PowerState {
	return stateOf(c.state.SelectedPower(actor))
}

// UnequipShoutSlot clears whatever shout or power the actor has selected.
func (c *Controller) UnequipShoutSlot(ctx context.Context, actor domain.ActorID) Outcome {
	log := logger.FromContext(ctx)

	var (
		outcome  Outcome
		previous domain.Item
	)
	c.locks.WithLock(actor, func() {
		current := c.Selected(actor)
		previous = current.Item

		switch current.Kind {
		case ShoutSelected:
			log.Debug(LogMsgUnequipping, "actor", actor, "form_spec", current.Spec(), "kind", current.Kind.String())
			c.equip.UnequipShout(actor, current.Item.(*domain.Shout))
			outcome = OutcomeUnequippedShout
		case SpellPowerSelected:
			log.Debug(LogMsgUnequipping, "actor", actor, "form_spec", current.Spec(), "kind", current.Kind.String())
			c.equip.UnequipSpell(actor, current.Item.(*domain.Spell), SlotPower)
			outcome = OutcomeUnequippedPower
		default:
			log.Debug(LogMsgNothingSelected, "actor", actor)
			outcome = OutcomeNothingSelected
		}
	})

	if outcome.Changed() {
		c.publish(ctx, event.NewPowerUnequippedEvent(actor, previous, string(outcome)))
	}
	return outcome
}

// EquipShoutByForm places target in the actor's power slot. The target must
// be a shout the actor knows; re-equipping the current selection is a no-op.
func (c *Controller) EquipShoutByForm(ctx context.Context, actor domain.ActorID, target domain.Item) Outcome {
	log := logger.FromContext(ctx)

	shout, ok := target.(*domain.Shout)
	if !ok || shout == nil {
		name := ""
		if !domain.IsAbsent(target) {
			name = target.Base().Name
		}
		log.Warn(LogMsgNotAShout, "actor", actor, "name", name)
		c.publish(ctx, event.NewEquipSkippedEvent(actor, target, string(OutcomeNotAShout)))
		return OutcomeNotAShout
	}

	log.Debug(LogMsgEquipRequested, "actor", actor, "name", shout.Name)

	var outcome Outcome
	c.locks.WithLock(actor, func() {
		current := c.Selected(actor)
		if domain.SameForm(current.Item, shout) {
			log.Debug(LogMsgAlreadyEquipped, "actor", actor, "name", shout.Name)
			outcome = OutcomeAlreadyEquipped
			return
		}

		if !c.state.KnowsShout(actor, shout) {
			log.Warn(LogMsgShoutNotKnown, "actor", actor, "name", shout.Name)
			outcome = OutcomeNotKnown
			return
		}

		c.equip.EquipShout(actor, shout)
		log.Debug(LogMsgShoutEquipped, "actor", actor, "name", shout.Name)
		outcome = OutcomeEquipped
	})

	if outcome == OutcomeEquipped {
		c.publish(ctx, event.NewShoutEquippedEvent(actor, shout, string(outcome)))
	} else {
		c.publish(ctx, event.NewEquipSkippedEvent(actor, shout, string(outcome)))
	}
	return outcome
}

func (c *Controller) publish(ctx context.Context, evt event.Event) {
	if c.bus == nil {
		return
	}
	if err := c.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
