package metrics

import (
	"context"

	"github.com/rethesda/soulsy/internal/event"
	"github.com/rethesda/soulsy/internal/logger"
)

// EventMetricsCollector subscribes to power slot events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all power slot events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.PowerShoutEquipped,
		event.PowerUnequipped,
		event.PowerEquipSkipped,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.PowerPayloadV1)
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	PowerTransitions.WithLabelValues(string(evt.Type), payload.Outcome).Inc()
	return nil
}

// LogMsgUnexpectedPayload is logged when an event carries a foreign payload type
const LogMsgUnexpectedPayload = "Unexpected payload type in power slot event"
