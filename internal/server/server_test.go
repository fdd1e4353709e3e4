package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rethesda/soulsy/internal/actor"
	"github.com/rethesda/soulsy/internal/cache"
	"github.com/rethesda/soulsy/internal/equippable"
	"github.com/rethesda/soulsy/internal/event"
	"github.com/rethesda/soulsy/internal/eventlog"
	"github.com/rethesda/soulsy/internal/handler"
	"github.com/rethesda/soulsy/internal/item"
	"github.com/rethesda/soulsy/internal/metrics"
	"github.com/rethesda/soulsy/internal/shout"
	"github.com/rethesda/soulsy/internal/sse"
)

const (
	specForce  = "Skyrim.esm|0x13E07"
	specPotion = "Skyrim.esm|0x3EADE"
)

func newTestServer(t *testing.T, apiKey string) *Server {
	t.Helper()
	store, err := item.NewStore(context.Background(), &item.Config{
		Version: "1.0",
		Items: []item.Def{
			{FormSpec: specForce, Name: "Unrelenting Force", Category: "shout"},
			{FormSpec: specPotion, Name: "Potion of Minor Healing", Category: "alchemy"},
		},
	})
	require.NoError(t, err)

	entries := cache.New(cache.DefaultConfig())
	registry := actor.NewRegistry()
	bus := event.NewMemoryBus()
	metrics.NewEventMetricsCollector().Register(bus)
	journal := eventlog.NewService(eventlog.NewMemoryRepository(100))
	require.NoError(t, journal.Subscribe(bus))
	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	sse.NewSubscriber(hub, bus).Subscribe()

	return NewServer(Options{Port: 0, APIKey: apiKey}, Dependencies{
		Catalog:    store,
		Classifier: equippable.NewClassifier(nil, equippable.WithCache(entries)),
		Actors:     registry,
		Controller: shout.NewController(registry, registry, bus),
		Cache:      entries,
		Events:     journal,
		Stream:     hub,
		Ready:      []handler.HealthChecker{store},
	})
}

func send(t *testing.T, s *Server, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Probes(t *testing.T) {
	s := newTestServer(t, "")

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		rec := send(t, s, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestServer_Routes(t *testing.T) {
	s := newTestServer(t, "")

	tests := []struct {
		method string
		path   string
		body   interface{}
		status int
	}{
		{http.MethodGet, "/api/v1/items", nil, http.StatusOK},
		{http.MethodGet, "/api/v1/items?category=shout", nil, http.StatusOK},
		{http.MethodPost, "/api/v1/classify", handler.ClassifyRequest{FormSpecs: []string{specPotion}}, http.StatusOK},
		{http.MethodPost, "/api/v1/actors", handler.RegisterActorRequest{ActorID: "lydia"}, http.StatusCreated},
		{http.MethodPost, "/api/v1/actors/lydia/shouts", handler.FormRequest{FormSpec: specForce}, http.StatusOK},
		{http.MethodPut, "/api/v1/actors/lydia/inventory", handler.SetInventoryRequest{Counts: map[string]int{specPotion: 2}}, http.StatusOK},
		{http.MethodGet, "/api/v1/actors/lydia/power", nil, http.StatusOK},
		{http.MethodPost, "/api/v1/actors/lydia/power/shout", handler.FormRequest{FormSpec: specForce}, http.StatusOK},
		{http.MethodDelete, "/api/v1/actors/lydia/power", nil, http.StatusOK},
		{http.MethodGet, "/api/v1/admin/cache/stats", nil, http.StatusOK},
		{http.MethodPost, "/api/v1/admin/cache/clear", nil, http.StatusOK},
		{http.MethodGet, "/api/v1/admin/events?actor_id=lydia", nil, http.StatusOK},
		{http.MethodGet, "/api/v1/nope", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		rec := send(t, s, tt.method, tt.path, tt.body, nil)
		assert.Equal(t, tt.status, rec.Code, "%s %s: %s", tt.method, tt.path, rec.Body.String())
	}
}

func TestServer_APIKey(t *testing.T) {
	s := newTestServer(t, "secret")

	assert.Equal(t, http.StatusUnauthorized, send(t, s, http.MethodGet, "/api/v1/items", nil, nil).Code)
	assert.Equal(t, http.StatusOK, send(t, s, http.MethodGet, "/api/v1/items", nil, map[string]string{HeaderAPIKey: "secret"}).Code)
	assert.Equal(t, http.StatusOK, send(t, s, http.MethodGet, "/healthz", nil, nil).Code)
}

func TestServer_SwaggerDocsArePublic(t *testing.T) {
	s := newTestServer(t, "secret")

	rec := send(t, s, http.MethodGet, "/swagger/doc.json", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/actors/{actorID}/power/shout")
	assert.Contains(t, rec.Body.String(), "soulsy dev harness API")
}

func TestServer_PowerTransitionsAreCounted(t *testing.T) {
	s := newTestServer(t, "")
	counter := metrics.PowerTransitions.WithLabelValues(string(event.PowerShoutEquipped), string(shout.OutcomeEquipped))
	before := testutil.ToFloat64(counter)

	require.Equal(t, http.StatusOK, send(t, s, http.MethodPost, "/api/v1/actors/player/shouts", handler.FormRequest{FormSpec: specForce}, nil).Code)
	rec := send(t, s, http.MethodPost, "/api/v1/actors/player/power/shout", handler.FormRequest{FormSpec: specForce}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))

	rec = send(t, s, http.MethodGet, "/api/v1/admin/events?actor_id=player", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var events handler.EventsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events.Events, 1)
	assert.Equal(t, string(shout.OutcomeEquipped), events.Events[0].Outcome)
	assert.Equal(t, specForce, events.Events[0].FormSpec)
}

func TestServer_ClassificationCache(t *testing.T) {
	s := newTestServer(t, "")

	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusOK, send(t, s, http.MethodPost, "/api/v1/classify", handler.ClassifyRequest{FormSpecs: []string{specPotion}}, nil).Code)
	}

	rec := send(t, s, http.MethodGet, "/api/v1/admin/cache/stats", nil, nil)
	var stats cache.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestServer_EventStream(t *testing.T) {
	s := newTestServer(t, "")
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/v1/events/stream?actor_id=player", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	reader := bufio.NewReader(resp.Body)
	nextEvent := func() string {
		name := ""
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			line = strings.TrimRight(line, "\n")
			if line == "" {
				return name
			}
			if strings.HasPrefix(line, "event: ") {
				name = strings.TrimPrefix(line, "event: ")
			}
		}
	}
	require.Equal(t, sse.EventTypeConnected, nextEvent())

	require.Equal(t, http.StatusOK, send(t, s, http.MethodPost, "/api/v1/actors/player/shouts", handler.FormRequest{FormSpec: specForce}, nil).Code)
	require.Equal(t, http.StatusOK, send(t, s, http.MethodPost, "/api/v1/actors/player/power/shout", handler.FormRequest{FormSpec: specForce}, nil).Code)

	assert.Equal(t, string(event.PowerShoutEquipped), nextEvent())
}
