package sse

import (
	"context"
	"log/slog"

	"github.com/rethesda/soulsy/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe forwards every power-slot event to the hub
func (s *Subscriber) Subscribe() {
	types := []event.Type{
		event.PowerShoutEquipped,
		event.PowerUnequipped,
		event.PowerEquipSkipped,
	}
	for _, t := range types {
		s.bus.Subscribe(t, s.handlePowerEvent)
	}

	slog.Info(LogMsgSubscribed, "types", types)
}

func (s *Subscriber) handlePowerEvent(_ context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.PowerPayloadV1)
	if !ok {
		slog.Warn(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	s.hub.Broadcast(string(evt.Type), payload.ActorID, PowerChangedPayload{
		ActorID:  payload.ActorID,
		FormSpec: payload.FormSpec,
		FormName: payload.FormName,
		Outcome:  payload.Outcome,
	})

	slog.Debug(LogMsgEventBroadcast,
		"event_type", evt.Type,
		"actor", payload.ActorID,
		"outcome", payload.Outcome)
	return nil
}
