package bootstrap

import (
	"context"
	"fmt"

	"github.com/rethesda/soulsy/internal/actor"
	"github.com/rethesda/soulsy/internal/domain"
	"github.com/rethesda/soulsy/internal/item"
	"github.com/rethesda/soulsy/internal/keyword"
	"github.com/rethesda/soulsy/internal/logger"
)

// LoadCatalog loads, validates and indexes the item catalog.
// It handles the complete lifecycle: read JSON, schema check, validate, index, log.
func LoadCatalog(ctx context.Context, path string) (*item.Store, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgLoadingItems, "path", path)

	loader := item.NewLoader()
	cfg, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadItems, err)
	}

	if err := loader.Validate(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidItems, err)
	}

	store, err := item.NewStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildStore, err)
	}

	log.Info(LogMsgItemsLoaded,
		"items", store.Len(),
		"relevant", len(store.Relevant()),
		"inventory", len(store.Inventory()))
	return store, nil
}

// LoadKeywords builds the keyword inspector. An empty path keeps the
// built-in keyword lists.
func LoadKeywords(ctx context.Context, path string) (*keyword.Inspector, error) {
	log := logger.FromContext(ctx)
	if path == "" {
		log.Info(LogMsgKeywordsDefault)
		return keyword.NewInspector(nil), nil
	}

	log.Info(LogMsgLoadingKeywords, "path", path)
	inspector, err := keyword.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadKeywords, err)
	}
	log.Info(LogMsgKeywordsLoaded, "path", path)
	return inspector, nil
}

// SeedInventory copies the catalog's stack counts into the player's inventory.
func SeedInventory(ctx context.Context, store *item.Store, registry *actor.Registry) error {
	counts := store.Counts()
	for spec, count := range counts {
		if err := registry.SetCount(domain.PlayerActor, spec, count); err != nil {
			return fmt.Errorf("%s '%s': %w", ErrMsgFailedSeedCount, spec, err)
		}
	}
	logger.FromContext(ctx).Info(LogMsgInventorySeeded, "stacks", len(counts))
	return nil
}
