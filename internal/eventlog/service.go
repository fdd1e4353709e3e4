// Package eventlog records power-slot events so operators can see what
// recently happened to an actor's selected power.
package eventlog

import (
	"context"
	"time"

	"github.com/rethesda/soulsy/internal/event"
	"github.com/rethesda/soulsy/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all power events
	Subscribe(bus event.Bus) error

	// GetEvents returns recorded events, newest first
	GetEvents(ctx context.Context, filter EventFilter) ([]Event, error)

	// CleanupOldEvents removes events older than retention
	CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// Subscribe registers event handlers for all power event types
func (s *service) Subscribe(bus event.Bus) error {
	eventTypes := []event.Type{
		event.PowerShoutEquipped,
		event.PowerUnequipped,
		event.PowerEquipSkipped,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}

	return nil
}

func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, ok := evt.Payload.(event.PowerPayloadV1)
	if !ok {
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	entry := Event{
		EventType: string(evt.Type),
		ActorID:   payload.ActorID,
		FormSpec:  payload.FormSpec,
		FormName:  payload.FormName,
		Outcome:   payload.Outcome,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.LogEvent(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type, "actor", payload.ActorID)
	return nil
}

func (s *service) GetEvents(ctx context.Context, filter EventFilter) ([]Event, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	return s.repo.GetEvents(ctx, filter)
}

func (s *service) CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	return s.repo.DeleteBefore(ctx, s.now().Add(-retention))
}
