package bootstrap

import (
	"context"
	"log/slog"

	"github.com/rethesda/soulsy/internal/actor"
	"github.com/rethesda/soulsy/internal/cache"
	"github.com/rethesda/soulsy/internal/config"
	"github.com/rethesda/soulsy/internal/equippable"
	"github.com/rethesda/soulsy/internal/event"
	"github.com/rethesda/soulsy/internal/eventlog"
	"github.com/rethesda/soulsy/internal/item"
	"github.com/rethesda/soulsy/internal/shout"
	"github.com/rethesda/soulsy/internal/sse"
)

// Engine holds every component the harness serves
type Engine struct {
	Catalog    *item.Store
	Cache      *cache.EntryCache
	Classifier *equippable.Classifier
	Actors     *actor.Registry
	Bus        *event.MemoryBus
	EventLog   eventlog.Service
	Stream     *sse.Hub
	Controller *shout.Controller
}

// BuildEngine loads the catalog and keywords and wires the classifier,
// actor registry, event subscribers and power-slot controller. The returned
// engine's Stream hub is running; stop it on shutdown.
func BuildEngine(ctx context.Context, cfg *config.Config) (*Engine, error) {
	inspector, err := LoadKeywords(ctx, cfg.KeywordsPath)
	if err != nil {
		return nil, err
	}

	store, err := LoadCatalog(ctx, cfg.ItemsPath)
	if err != nil {
		return nil, err
	}

	registry := actor.NewRegistry()
	if err := SeedInventory(ctx, store, registry); err != nil {
		return nil, err
	}

	bus := event.NewMemoryBus()
	journal := eventlog.NewService(eventlog.NewMemoryRepository(cfg.EventLogSize))
	hub := sse.NewHub()
	if err := RegisterEventHandlers(EventHandlerDependencies{EventBus: bus, EventLogService: journal, Stream: hub}); err != nil {
		return nil, err
	}
	hub.Start()
	slog.Info(LogMsgEventSystemInitialized, "journal_size", cfg.EventLogSize, "retention", cfg.EventRetention)

	entries := cache.New(cfg.CacheConfig())

	return &Engine{
		Catalog:    store,
		Cache:      entries,
		Classifier: equippable.NewClassifier(inspector, equippable.WithCache(entries)),
		Actors:     registry,
		Bus:        bus,
		EventLog:   journal,
		Stream:     hub,
		Controller: shout.NewController(registry, registry, bus),
	}, nil
}
