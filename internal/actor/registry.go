// Package actor is an in-memory stand-in for the engine's actor state and
// equip mechanism. The dev harness and tests drive the power-slot
// controller through it.
package actor

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/rethesda/soulsy/internal/domain"
	"github.com/rethesda/soulsy/internal/equippable"
	"github.com/rethesda/soulsy/internal/shout"
)

type actorState struct {
	selected  domain.Item
	known     map[string]bool
	inventory map[string]int
}

// Registry tracks actors by id. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	actors map[domain.ActorID]*actorState
}

// NewRegistry creates a registry with the player already registered.
func NewRegistry() *Registry {
	r := &Registry{actors: make(map[domain.ActorID]*actorState)}
	r.Register(domain.PlayerActor)
	return r
}

// Register adds an actor. Registering twice keeps the existing state.
func (r *Registry) Register(id domain.ActorID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.actors[id]; ok {
		return
	}
	r.actors[id] = &actorState{
		known:     make(map[string]bool),
		inventory: make(map[string]int),
	}
}

// Exists reports whether the actor is registered.
func (r *Registry) Exists(id domain.ActorID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.actors[id]
	return ok
}

// LearnShout marks a shout as known by the actor.
func (r *Registry) LearnShout(id domain.ActorID, s *domain.Shout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, err := r.get(id)
	if err != nil {
		return err
	}
	a.known[s.Spec] = true
	return nil
}

// SelectPower puts a power spell in the actor's power slot directly. Powers
// are equipped through the magic menu, not through the shout controller.
func (r *Registry) SelectPower(id domain.ActorID, spell *domain.Spell) error {
	if spell == nil || !spell.Kind.IsPower() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNotAPower)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	a, err := r.get(id)
	if err != nil {
		return err
	}
	a.selected = spell
	return nil
}

// SetCount records how many of a form the actor carries.
func (r *Registry) SetCount(id domain.ActorID, spec string, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, err := r.get(id)
	if err != nil {
		return err
	}
	if count <= 0 {
		delete(a.inventory, spec)
		return nil
	}
	a.inventory[spec] = count
	return nil
}

// Counter returns a view of one actor's inventory counts.
func (r *Registry) Counter(id domain.ActorID) equippable.Counter {
	return &InventoryCounter{registry: r, actor: id}
}

// SelectedPower implements shout.ActorState.
func (r *Registry) SelectedPower(id domain.ActorID) domain.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.actors[id]
	if !ok {
		return nil
	}
	return a.selected
}

// KnowsShout implements shout.ActorState.
func (r *Registry) KnowsShout(id domain.ActorID, s *domain.Shout) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.actors[id]
	if !ok || s == nil {
		return false
	}
	return a.known[s.Spec]
}

// EquipShout implements shout.EquipService.
func (r *Registry) EquipShout(id domain.ActorID, s *domain.Shout) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.actors[id]
	if !ok {
		slog.Warn(LogMsgUnknownActor, "actor", id, "call", "EquipShout")
		return
	}
	a.selected = s
}

// UnequipSpell implements shout.EquipService. Only the power slot is modeled.
func (r *Registry) UnequipSpell(id domain.ActorID, spell *domain.Spell, slot shout.EquipSlot) {
	if slot != shout.SlotPower {
		slog.Debug(LogMsgHandSlotIgnored, "actor", id, "slot", int(slot))
		return
	}
	r.clearIfSelected(id, spell)
}

// UnequipShout implements shout.EquipService.
func (r *Registry) UnequipShout(id domain.ActorID, s *domain.Shout) {
	r.clearIfSelected(id, s)
}

func (r *Registry) clearIfSelected(id domain.ActorID, item domain.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.actors[id]
	if !ok {
		slog.Warn(LogMsgUnknownActor, "actor", id, "call", "Unequip")
		return
	}
	if domain.SameForm(a.selected, item) {
		a.selected = nil
	}
}

func (r *Registry) get(id domain.ActorID) (*actorState, error) {
	a, ok := r.actors[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrActorNotFound, id)
	}
	return a, nil
}

// InventoryCounter reports stack counts for one actor.
type InventoryCounter struct {
	registry *Registry
	actor    domain.ActorID
}

// InventoryCount implements equippable.Counter.
func (c *InventoryCounter) InventoryCount(item domain.Item) int {
	if domain.IsAbsent(item) {
		return 0
	}
	c.registry.mu.RLock()
	defer c.registry.mu.RUnlock()
	a, ok := c.registry.actors[c.actor]
	if !ok {
		return 0
	}
	return a.inventory[item.Base().Spec]
}
