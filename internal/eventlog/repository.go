package eventlog

import (
	"context"
	"sync"
	"time"

	"github.com/rethesda/soulsy/internal/domain"
)

// Event represents a recorded power-slot event
type Event struct {
	ID        int64          `json:"id"`
	EventType string         `json:"event_type"`
	ActorID   domain.ActorID `json:"actor_id"`
	FormSpec  string         `json:"form_spec,omitempty"`
	FormName  string         `json:"form_name,omitempty"`
	Outcome   string         `json:"outcome"`
	CreatedAt time.Time      `json:"created_at"`
}

// EventFilter filters events for queries. Zero fields match everything.
type EventFilter struct {
	ActorID   domain.ActorID
	EventType string
	Since     time.Time
	Limit     int
}

func (f EventFilter) matches(evt Event) bool {
	if f.ActorID != "" && evt.ActorID != f.ActorID {
		return false
	}
	if f.EventType != "" && evt.EventType != f.EventType {
		return false
	}
	if !f.Since.IsZero() && evt.CreatedAt.Before(f.Since) {
		return false
	}
	return true
}

// Repository defines the interface for event storage
type Repository interface {
	// LogEvent stores an event and assigns its ID
	LogEvent(ctx context.Context, evt Event) error

	// GetEvents returns matching events, newest first
	GetEvents(ctx context.Context, filter EventFilter) ([]Event, error)

	// DeleteBefore removes events created before cutoff
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// MemoryRepository keeps the most recent events in a bounded buffer.
// When full, the oldest event is dropped.
type MemoryRepository struct {
	mu       sync.RWMutex
	events   []Event
	capacity int
	nextID   int64
}

// NewMemoryRepository creates a repository holding at most capacity events
func NewMemoryRepository(capacity int) *MemoryRepository {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryRepository{capacity: capacity}
}

func (r *MemoryRepository) LogEvent(_ context.Context, evt Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	evt.ID = r.nextID
	if len(r.events) == r.capacity {
		copy(r.events, r.events[1:])
		r.events = r.events[:len(r.events)-1]
	}
	r.events = append(r.events, evt)
	return nil
}

func (r *MemoryRepository) GetEvents(_ context.Context, filter EventFilter) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Event, 0)
	for i := len(r.events) - 1; i >= 0; i-- {
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
		if filter.matches(r.events[i]) {
			out = append(out, r.events[i])
		}
	}
	return out, nil
}

func (r *MemoryRepository) DeleteBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.events[:0]
	for _, evt := range r.events {
		if !evt.CreatedAt.Before(cutoff) {
			kept = append(kept, evt)
		}
	}
	removed := int64(len(r.events) - len(kept))
	r.events = kept
	return removed, nil
}
