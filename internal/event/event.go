package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/rethesda/soulsy/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Power-slot event types
const (
	PowerShoutEquipped Type = "power.shout_equipped"
	PowerUnequipped    Type = "power.unequipped"
	PowerEquipSkipped  Type = "power.equip_skipped"
)

// PowerPayloadV1 is the typed payload for power-slot events
type PowerPayloadV1 struct {
	ActorID  domain.ActorID `json:"actor_id"`
	FormSpec string         `json:"form_spec,omitempty"`
	FormName string         `json:"form_name,omitempty"`
	Outcome  string         `json:"outcome"`
}

// NewShoutEquippedEvent creates an event for a shout placed in the power slot
func NewShoutEquippedEvent(actor domain.ActorID, shout domain.Item, outcome string) Event {
	return newPowerEvent(PowerShoutEquipped, actor, shout, outcome)
}

// NewPowerUnequippedEvent creates an event for a shout or power removed from the slot
func NewPowerUnequippedEvent(actor domain.ActorID, previous domain.Item, outcome string) Event {
	return newPowerEvent(PowerUnequipped, actor, previous, outcome)
}

// NewEquipSkippedEvent creates an event for an equip request resolved as a no-op
func NewEquipSkippedEvent(actor domain.ActorID, target domain.Item, outcome string) Event {
	return newPowerEvent(PowerEquipSkipped, actor, target, outcome)
}

func newPowerEvent(t Type, actor domain.ActorID, form domain.Item, outcome string) Event {
	payload := PowerPayloadV1{ActorID: actor, Outcome: outcome}
	if !domain.IsAbsent(form) {
		payload.FormSpec = form.Base().Spec
		payload.FormName = form.Base().Name
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(ErrMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
