package sse

import "github.com/rethesda/soulsy/internal/domain"

// Event represents an event sent over SSE
type Event struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	ActorID   domain.ActorID `json:"actor_id,omitempty"`
	Timestamp int64          `json:"timestamp"`
	Payload   interface{}    `json:"payload"`
}

// PowerChangedPayload is the SSE payload for power-slot transitions
type PowerChangedPayload struct {
	ActorID  domain.ActorID `json:"actor_id"`
	FormSpec string         `json:"form_spec,omitempty"`
	FormName string         `json:"form_name,omitempty"`
	Outcome  string         `json:"outcome"`
}

// ConnectedPayload is the first message every client receives
type ConnectedPayload struct {
	ClientID string         `json:"client_id"`
	Filters  []string       `json:"filters,omitempty"`
	ActorID  domain.ActorID `json:"actor_id,omitempty"`
}
