package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rethesda/soulsy/internal/domain"
	"github.com/rethesda/soulsy/internal/eventlog"
	"github.com/rethesda/soulsy/internal/logger"
)

// AdminEventsHandler handles admin event log queries
type AdminEventsHandler struct {
	journal EventJournal
}

// NewAdminEventsHandler creates a new admin events handler
func NewAdminEventsHandler(journal EventJournal) *AdminEventsHandler {
	return &AdminEventsHandler{journal: journal}
}

// EventsResponse contains event log query results
type EventsResponse struct {
	Events []eventlog.Event `json:"events"`
}

// HandleGetEvents retrieves recent power events, newest first
// GET /api/v1/admin/events?actor_id=X&event_type=Y&since=Z&limit=N
func (h *AdminEventsHandler) HandleGetEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := eventlog.EventFilter{
		ActorID:   domain.ActorID(query.Get("actor_id")),
		EventType: query.Get("event_type"),
		Limit:     eventlog.DefaultLimit,
	}

	if sinceStr := query.Get("since"); sinceStr != "" {
		since, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidSince)
			return
		}
		filter.Since = since
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > eventlog.MaxLimit {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}
		filter.Limit = limit
	}

	events, err := h.journal.GetEvents(r.Context(), filter)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgGetEventsFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgGetEventsFailed)
		return
	}

	respondJSON(w, http.StatusOK, EventsResponse{Events: events})
}
