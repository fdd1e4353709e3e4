package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/rethesda/soulsy/internal/event"
	"github.com/rethesda/soulsy/internal/eventlog"
	"github.com/rethesda/soulsy/internal/metrics"
	"github.com/rethesda/soulsy/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	EventLogService eventlog.Service
	// Stream is optional
	Stream *sse.Hub
}

// RegisterEventHandlers sets up all event subscribers: the metrics
// collector, the event logger and, when present, the SSE stream.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if err := deps.EventLogService.Subscribe(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLogger, err)
	}
	slog.Info(LogMsgEventLoggerInitialized)

	if deps.Stream != nil {
		sse.NewSubscriber(deps.Stream, deps.EventBus).Subscribe()
	}

	return nil
}
